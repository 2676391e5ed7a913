package settings

// 设置键名
const (
	KeyTimestamp  = "timestamp"
	KeyLogMode    = "logMode"
	KeyHexReceive = "hexReceive"
	KeyHexSend    = "hexSend"
)

// Preferences 显示偏好
type Preferences struct {
	Timestamp  bool
	LogMode    bool
	HexReceive bool
	HexSend    bool
}

// DefaultPreferences 默认显示时间戳和日志模式
func DefaultPreferences() Preferences {
	return Preferences{
		Timestamp:  true,
		LogMode:    true,
		HexReceive: false,
		HexSend:    false,
	}
}

// LoadPreferences 从存储读取偏好，缺失的键使用默认值
func LoadPreferences(s *Store) Preferences {
	def := DefaultPreferences()
	return Preferences{
		Timestamp:  s.Bool(KeyTimestamp, def.Timestamp),
		LogMode:    s.Bool(KeyLogMode, def.LogMode),
		HexReceive: s.Bool(KeyHexReceive, def.HexReceive),
		HexSend:    s.Bool(KeyHexSend, def.HexSend),
	}
}

// SavePreferences 写入全部偏好并立即同步到文件
func SavePreferences(s *Store, p Preferences) error {
	s.SetBool(KeyTimestamp, p.Timestamp)
	s.SetBool(KeyLogMode, p.LogMode)
	s.SetBool(KeyHexReceive, p.HexReceive)
	s.SetBool(KeyHexSend, p.HexSend)
	return s.Sync()
}

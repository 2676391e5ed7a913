package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"serialtool/internal/logger"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFiles embed.FS

// I18n 国际化管理器
type I18n struct {
	currentLang string
	messages    map[string]string
	fallback    map[string]string
}

// NewI18n 创建国际化管理器；lang 为空或 "auto" 时检测系统语言
func NewI18n(lang string) *I18n {
	i18n := &I18n{
		messages: make(map[string]string),
		fallback: make(map[string]string),
	}

	if lang == "" || strings.EqualFold(lang, "auto") {
		lang = detectSystemLanguage()
	}
	i18n.SetLanguage(lang)

	return i18n
}

// SetLanguage 设置语言
func (i *I18n) SetLanguage(lang string) {
	lang = normalizeLanguageCode(lang)

	// 加载回退语言（英文）
	if err := i.loadLanguageFile("en", &i.fallback); err != nil {
		logger.Warn(fmt.Sprintf("无法加载回退语言文件: %v", err))
	}

	// 加载目标语言
	if err := i.loadLanguageFile(lang, &i.messages); err != nil {
		logger.Warn(fmt.Sprintf("无法加载语言文件 %s: %v", lang, err))
		lang = "en"
		i.messages = make(map[string]string, len(i.fallback))
		for k, v := range i.fallback {
			i.messages[k] = v
		}
	}

	i.currentLang = lang
	logger.Info(fmt.Sprintf("语言设置为: %s", lang))
}

// T 翻译文本
func (i *I18n) T(key string, args ...interface{}) string {
	if text, exists := i.messages[key]; exists {
		if len(args) > 0 {
			return fmt.Sprintf(text, args...)
		}
		return text
	}

	if text, exists := i.fallback[key]; exists {
		if len(args) > 0 {
			return fmt.Sprintf(text, args...)
		}
		return text
	}

	logger.Warn(fmt.Sprintf("未找到翻译键: %s", key))
	return key
}

// GetCurrentLanguage 获取当前语言
func (i *I18n) GetCurrentLanguage() string {
	return i.currentLang
}

// GetAvailableLanguages 获取可用语言列表
func (i *I18n) GetAvailableLanguages() []string {
	return []string{"en", "zh-CN"}
}

func (i *I18n) loadLanguageFile(lang string, target *map[string]string) error {
	filename := fmt.Sprintf("locales/%s.json", lang)

	data, err := localeFiles.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("读取语言文件失败: %w", err)
	}

	var messages map[string]string
	if err := json.Unmarshal(data, &messages); err != nil {
		return fmt.Errorf("解析语言文件失败: %w", err)
	}

	*target = messages
	return nil
}

// detectSystemLanguage 检测系统语言
func detectSystemLanguage() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if lang := os.Getenv(env); lang != "" {
			return normalizeLanguageCode(lang)
		}
	}

	// 使用golang.org/x/text/language解析
	tags, _, _ := language.ParseAcceptLanguage(os.Getenv("ACCEPT_LANGUAGE"))
	if len(tags) > 0 {
		return normalizeLanguageCode(tags[0].String())
	}

	return "en"
}

// normalizeLanguageCode 标准化语言代码
func normalizeLanguageCode(lang string) string {
	// 移除编码信息 (如 zh_CN.UTF-8 -> zh_CN)
	if idx := strings.Index(lang, "."); idx != -1 {
		lang = lang[:idx]
	}

	lang = strings.ReplaceAll(lang, "_", "-")
	lang = strings.ToLower(lang)

	switch {
	case strings.HasPrefix(lang, "zh-tw") || strings.HasPrefix(lang, "zh-hk") || strings.HasPrefix(lang, "zh-hant"):
		// 暂无繁体翻译
		return "en"
	case strings.HasPrefix(lang, "zh"):
		return "zh-CN"
	default:
		return "en"
	}
}

// 全局实例
var globalI18n *I18n

// Init 初始化全局国际化实例
func Init(lang string) {
	globalI18n = NewI18n(lang)
}

// T 全局翻译函数
func T(key string, args ...interface{}) string {
	if globalI18n == nil {
		Init("auto")
	}
	return globalI18n.T(key, args...)
}

// GetCurrentLanguage 获取当前语言
func GetCurrentLanguage() string {
	if globalI18n == nil {
		Init("auto")
	}
	return globalI18n.GetCurrentLanguage()
}

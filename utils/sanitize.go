// file: utils/sanitize.go
package utils

import (
	"regexp"
	"strings"
)

var (
	namePattern     = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)
	fileNamePattern = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)
)

// SanitizeName 清洗目录名：只保留字母、数字、下划线、连字符
func SanitizeName(s string) string {
	return namePattern.ReplaceAllString(s, "")
}

// SanitizeFileName 清洗文件名，额外保留点号以保住扩展名
func SanitizeFileName(s string) string {
	return fileNamePattern.ReplaceAllString(s, "")
}

// IsNameSafe 校验自定义目录名：非空且不含路径分隔符
func IsNameSafe(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	return !strings.ContainsAny(s, `/\`)
}

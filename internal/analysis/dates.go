package analysis

import (
	"fmt"
	"time"
)

// 支持的日期格式（按解析优先级排列）
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/06", // DD/MM/YY
}

// ParseOrderDate 解析订单日期字符串
// 支持 ISO 日期/时间与 DD/MM/YY，解析失败时 ok 为 false
// 解析失败的订单会被日期分桶类聚合静默排除（不报错）
func ParseOrderDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MonthKey 返回月度周期键（YYYY-MM，零填充保证字典序即时间序）
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// WeekStartKey 返回周度周期键（ISO 周起始日，即周一的日期）
func WeekStartKey(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset).Format("2006-01-02")
}

// QuarterKey 返回季度周期键（YYYY-Qn）
func QuarterKey(t time.Time) string {
	quarter := (int(t.Month())-1)/3 + 1
	return fmt.Sprintf("%d-Q%d", t.Year(), quarter)
}

// DayKey 返回日级周期键（YYYY-MM-DD）
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

package config

import "time"

// Config carries the fixed publisher settings of the aggregator.
// There is no config file and no environment lookup; every invocation
// runs with Default() unless a test overrides individual fields.
type Config struct {
	// ZoneName is the IANA zone all input timestamps are interpreted in,
	// regardless of any zone marker the source feed claims.
	ZoneName string
	// ZoneOffset is the pinned fallback offset (seconds east of UTC)
	// used when the system zone database lacks ZoneName.
	ZoneOffset int
	ZoneAbbr   string

	ChannelTitle       string
	ChannelLink        string
	ChannelDescription string
	ChannelLanguage    string

	// ItemLink is the constant link of the single aggregated item.
	ItemLink string
	// SearchURL is the mobile search template the normalized entry
	// links point at; the percent-encoded keyword is appended to it.
	SearchURL string
}

var DefaultZoneOffset = int(8 * time.Hour / time.Second)

func Default() Config {
	return Config{
		ZoneName:   "Asia/Shanghai",
		ZoneOffset: DefaultZoneOffset,
		ZoneAbbr:   "CST",

		ChannelTitle:       "微博热搜榜 - 聚合版",
		ChannelLink:        "https://tophub.today/n/KqndgxeLl9",
		ChannelDescription: "每个条目包含一个时刻的所有热搜",
		ChannelLanguage:    "zh-cn",

		ItemLink:  "https://tophub.today/n/KqndgxeLl9",
		SearchURL: "https://m.weibo.cn/search?containerid=100103type%3D1%26q%3D",
	}
}

// Location resolves ZoneName, falling back to the pinned offset when
// the zone database is unavailable so output stays identical across
// platforms.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.ZoneName)
	if err != nil {
		return time.FixedZone(c.ZoneAbbr, c.ZoneOffset)
	}
	return loc
}

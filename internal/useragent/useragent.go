package useragent

import ua "github.com/mileusna/useragent"

type Info struct {
	Browser    string
	OS         string
	DeviceType string
}

// Classify reduces a raw User-Agent header to the coarse labels the visit
// log stores.
func Classify(raw string) Info {
	parsed := ua.Parse(raw)

	info := Info{
		Browser:    parsed.Name,
		OS:         parsed.OS,
		DeviceType: "Desktop",
	}

	if info.Browser == "" {
		info.Browser = "Unknown"
	}
	if info.OS == "" {
		info.OS = "Unknown"
	}

	switch {
	case parsed.Mobile:
		info.DeviceType = "Mobile"
	case parsed.Tablet:
		info.DeviceType = "Tablet"
	case parsed.Bot:
		info.DeviceType = "Bot"
	}

	return info
}

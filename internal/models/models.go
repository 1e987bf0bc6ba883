// package models defines the client-facing data model for the portfolio service
package models

// PinnedRepo is one entry in the /api/github-pinned response.
type PinnedRepo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	HTMLURL     string   `json:"html_url"`
	Homepage    string   `json:"homepage,omitempty"`
	Topics      []string `json:"topics"`
	Languages   []string `json:"languages"`
}

// NowPlaying is the /api/spotify/now-playing response.
//
// When nothing is playing (or any upstream call fails) only IsPlaying is
// set; the remaining fields are omitted.
type NowPlaying struct {
	IsPlaying bool   `json:"isPlaying"`
	Title     string `json:"title,omitempty"`
	Artist    string `json:"artist,omitempty"`
	Album     string `json:"album,omitempty"`
	AlbumArt  string `json:"albumArt,omitempty"`
	SongURL   string `json:"songUrl,omitempty"`
}

// StatSlice is a named share of today's coding time (top language or project).
type StatSlice struct {
	Name    string  `json:"name"`
	Time    string  `json:"time"`
	Percent float64 `json:"percent"`
}

// CodingActivity is the /api/wakatime response.
//
// CurrentProject and CurrentLanguage are present only while IsCoding is
// true (last heartbeat within the activity window).
type CodingActivity struct {
	IsCoding         bool       `json:"isCoding"`
	TodayTotal       string     `json:"todayTotal"`
	WeekTotal        string     `json:"weekTotal"`
	CurrentProject   string     `json:"currentProject,omitempty"`
	CurrentLanguage  string     `json:"currentLanguage,omitempty"`
	TopLanguageToday *StatSlice `json:"topLanguageToday,omitempty"`
	TopProjectToday  *StatSlice `json:"topProjectToday,omitempty"`
	WeeklyAverage    string     `json:"weeklyAverage"`
}

// ZeroActivity returns the all-default activity payload served when the
// summary fetches fail.
func ZeroActivity() *CodingActivity {
	return &CodingActivity{
		IsCoding:      false,
		TodayTotal:    "0 mins",
		WeekTotal:     "0 mins",
		WeeklyAverage: "0 mins",
	}
}

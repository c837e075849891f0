package models

import "net/url"

type Story struct {
	StoryID   string `json:"storyId"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	URL       string `json:"url"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
}

// HostName returns the host part of the story URL, or the raw URL if it
// cannot be parsed.
func (s Story) HostName() string {
	u, err := url.Parse(s.URL)
	if err != nil || u.Host == "" {
		return s.URL
	}
	return u.Host
}

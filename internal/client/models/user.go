// Package models holds the client-side data types shared by the API client,
// the controller and the front ends.
package models

import "github.com/dmitrijs2005/snoozer/internal/common"

// User is the in-memory session user for the lifetime of the page.
type User struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	// CreatedAt is the creation timestamp exactly as the API sent it.
	CreatedAt  string  `json:"createdAt"`
	LoginToken string  `json:"-"`
	Favorites  []Story `json:"favorites"`
	OwnStories []Story `json:"stories"`
}

// IsFavorite reports whether the story with storyID is among the user's favorites.
func (u *User) IsFavorite(storyID string) bool {
	if u == nil {
		return false
	}
	for _, s := range u.Favorites {
		if s.StoryID == storyID {
			return true
		}
	}
	return false
}

// Profile is what the profile panel displays for a user.
type Profile struct {
	Name     string
	Username string
	JoinDate string
}

// Profile builds the profile panel data. The join date is the first 10
// characters of the creation timestamp, taken as is, without any time zone
// conversion.
func (u *User) Profile() Profile {
	return Profile{
		Name:     u.Name,
		Username: u.Username,
		JoinDate: common.TruncateRunes(u.CreatedAt, 10),
	}
}

package models

// Character is a guild member's game character as shown on roster cards.
type Character struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatarUrl"`
	Level     int    `json:"level"`
	Job       string `json:"job"`
	Club      string `json:"club"`
	Server    string `json:"server"`
}

// Settlement is a summary/achievement card attached to a character.
type Settlement struct {
	ID          string `json:"id"`
	CharacterID string `json:"characterId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	AcquiredAt  string `json:"acquiredAt"`
}

// Comment is a guestbook ("talk") entry.
type Comment struct {
	ID           string `json:"id"`
	UserID       *int64 `json:"userId"`
	Author       string `json:"author"`
	AuthorAvatar string `json:"authorAvatar"`
	Content      string `json:"content"`
	CreatedAt    string `json:"createdAt"`
	IsMine       bool   `json:"isMine"`
}

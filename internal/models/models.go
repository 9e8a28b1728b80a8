package models

import "time"

// UserProfile represents a registered person. PasswordHash never leaves the server.
type UserProfile struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	CoupleID     *string   `json:"couple_id,omitempty"`
	AvatarURL    *string   `json:"avatar_url,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Couple is the shared account unit binding two user profiles.
// Its ID doubles as the invite code shared out-of-band.
type Couple struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	IsActive    bool      `json:"is_active"`
	SpecialCode *string   `json:"special_code,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Member roles. A couple holds at most one member per role.
const (
	RolePartner1 = "partner_1"
	RolePartner2 = "partner_2"
)

// CoupleMember binds one user profile to one couple with a fixed role.
type CoupleMember struct {
	ID        string    `json:"id"`
	CoupleID  string    `json:"couple_id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Activity is a global catalog entry, not couple-owned.
type Activity struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`   // romantic | fun | surprise | challenge
	Difficulty  string    `json:"difficulty"` // easy | medium | hard
	Duration    string    `json:"duration"`
	IsSurprise  bool      `json:"is_surprise"`
	CreatedAt   time.Time `json:"created_at"`
}

// CoupleActivity tracks one couple's status for a catalog activity.
type CoupleActivity struct {
	ID          string     `json:"id"`
	CoupleID    string     `json:"couple_id"`
	ActivityID  string     `json:"activity_id"`
	Status      string     `json:"status"`
	Rating      *int       `json:"rating,omitempty"`
	Notes       string     `json:"notes"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	Activity    *Activity  `json:"activity,omitempty"`
}

// Message is a chat message within a couple.
type Message struct {
	ID          string    `json:"id"`
	CoupleID    string    `json:"couple_id"`
	SenderID    string    `json:"sender_id"`
	Content     string    `json:"content"`
	MessageType string    `json:"message_type"` // text | image | sticker | voice
	SenderName  string    `json:"sender_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// DiaryEntry is a shared diary entry.
type DiaryEntry struct {
	ID         string    `json:"id"`
	CoupleID   string    `json:"couple_id"`
	AuthorID   string    `json:"author_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Mood       string    `json:"mood"`
	Photos     []string  `json:"photos"`
	AuthorName string    `json:"author_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Event is a calendar entry.
type Event struct {
	ID          string    `json:"id"`
	CoupleID    string    `json:"couple_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"` // anniversary | date | special | reminder
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// WishlistItem is a shared wishlist entry.
type WishlistItem struct {
	ID            string     `json:"id"`
	CoupleID      string     `json:"couple_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      string     `json:"category"` // travel | experiences | gifts | goals | general
	Priority      string     `json:"priority"` // low | medium | high | urgent
	EstimatedCost *float64   `json:"estimated_cost,omitempty"`
	ImageURL      *string    `json:"image_url,omitempty"`
	IsCompleted   bool       `json:"is_completed"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	AddedBy       string     `json:"added_by"`
	CreatedAt     time.Time  `json:"created_at"`
}

// WeeklyChallenge is a couple's challenge for one week.
type WeeklyChallenge struct {
	ID          string     `json:"id"`
	CoupleID    string     `json:"couple_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	WeekStart   time.Time  `json:"week_start"`
	Status      string     `json:"status"` // active | completed | expired
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// GalleryItem is media metadata; the file itself lives at an external URL.
type GalleryItem struct {
	ID         string    `json:"id"`
	CoupleID   string    `json:"couple_id"`
	URL        string    `json:"url"`
	Type       string    `json:"type"` // photo | video
	Title      string    `json:"title"`
	Folder     string    `json:"folder"` // dates | trips | special | everyday
	IsFavorite bool      `json:"is_favorite"`
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// DailyQuestion is a global question from the rotating catalog.
type DailyQuestion struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// QuestionAnswer is one user's answer for a given question date.
type QuestionAnswer struct {
	ID           string    `json:"id"`
	QuestionID   string    `json:"question_id"`
	CoupleID     string    `json:"couple_id"`
	UserID       string    `json:"user_id"`
	QuestionDate time.Time `json:"question_date"`
	Answer       string    `json:"answer"`
	CreatedAt    time.Time `json:"created_at"`
}

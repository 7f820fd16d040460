package model

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Identity is derived from an email on every login and never stored.
type Identity struct {
	Email       string
	Role        Role
	DisplayName string
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

type EquipmentStatus string

const (
	EquipmentAvailable        EquipmentStatus = "Available"
	EquipmentIssued           EquipmentStatus = "Issued"
	EquipmentUnderMaintenance EquipmentStatus = "Under Maintenance"
)

func (s EquipmentStatus) Valid() bool {
	switch s {
	case EquipmentAvailable, EquipmentIssued, EquipmentUnderMaintenance:
		return true
	default:
		return false
	}
}

// Equipment carries IssuedTo and IssuedAt only while Status is Issued.
type Equipment struct {
	ID       string          `db:"id"`
	Name     string          `db:"name"`
	Status   EquipmentStatus `db:"status"`
	IssuedTo *string         `db:"issued_to"`
	IssuedAt *time.Time      `db:"issued_at"`
}

// EquipmentPatch is applied by a single store statement. When SetIssued is
// false the issued fields keep their stored values.
type EquipmentPatch struct {
	Status    EquipmentStatus
	SetIssued bool
	IssuedTo  *string
	IssuedAt  *time.Time
}

type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "Pending"
	ComplaintInProgress ComplaintStatus = "In Progress"
	ComplaintResolved   ComplaintStatus = "Resolved"
)

func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintPending, ComplaintInProgress, ComplaintResolved:
		return true
	default:
		return false
	}
}

type ComplaintCategory string

const (
	CategoryWaste       ComplaintCategory = "waste"
	CategoryMaintenance ComplaintCategory = "maintenance"
	CategoryOther       ComplaintCategory = "other"
)

func (c ComplaintCategory) Valid() bool {
	switch c {
	case CategoryWaste, CategoryMaintenance, CategoryOther:
		return true
	default:
		return false
	}
}

type Complaint struct {
	ID           string            `db:"id"`
	Title        string            `db:"title"`
	Description  string            `db:"description"`
	Location     string            `db:"location"`
	Category     ComplaintCategory `db:"category"`
	ContactEmail string            `db:"contact_email"`
	ImageBase64  *string           `db:"image_base64"`
	MimeType     *string           `db:"mime_type"`
	Status       ComplaintStatus   `db:"status"`
	CreatedAt    time.Time         `db:"created_at"`
	UpdatedAt    time.Time         `db:"updated_at"`
}

type NewComplaint struct {
	Title       string
	Description string
	Location    string
	Category    ComplaintCategory
	ImageBase64 *string
	MimeType    *string
}

type LostFoundType string

const (
	ItemLost  LostFoundType = "lost"
	ItemFound LostFoundType = "found"
)

func (t LostFoundType) Valid() bool {
	return t == ItemLost || t == ItemFound
}

type LostFoundStatus string

const (
	ItemActive   LostFoundStatus = "active"
	ItemResolved LostFoundStatus = "resolved"
)

type LostFoundItem struct {
	ID           string          `db:"id"`
	Type         LostFoundType   `db:"type"`
	ItemName     string          `db:"item_name"`
	Description  string          `db:"description"`
	Location     string          `db:"location"`
	ContactEmail string          `db:"contact_email"`
	ContactName  string          `db:"contact_name"`
	ImageBase64  *string         `db:"image_base64"`
	MimeType     *string         `db:"mime_type"`
	Date         time.Time       `db:"date"`
	Status       LostFoundStatus `db:"status"`
}

type NewLostFoundItem struct {
	Type        LostFoundType
	ItemName    string
	Description string
	Location    string
	ContactName string
	ImageBase64 *string
	MimeType    *string
}

// LostFoundFilter narrows a listing of active items. Empty fields match everything.
type LostFoundFilter struct {
	Type   LostFoundType
	Search string
}

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealSnacks    MealType = "snacks"
	MealDinner    MealType = "dinner"
)

// MealTypes is the fixed reporting order of the mess.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealSnacks, MealDinner}

func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealSnacks, MealDinner:
		return true
	default:
		return false
	}
}

type MessFeedback struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	MealType  MealType  `db:"meal_type"`
	Rating    int       `db:"rating"`
	Comment   *string   `db:"comment"`
	Timestamp time.Time `db:"timestamp"`
}

type NewFeedback struct {
	MealType MealType
	Rating   int
	Comment  *string
}

// RatingTotals is the per-meal sum and count of feedback ratings.
type RatingTotals struct {
	MealType MealType `db:"meal_type"`
	Sum      int64    `db:"rating_sum"`
	Count    int64    `db:"rating_count"`
}

type MessMenu struct {
	Date      string
	Breakfast []string
	Lunch     []string
	Snacks    []string
	Dinner    []string
}

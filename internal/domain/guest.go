package domain

type Status string

const (
	StatusPending  Status = "pending"
	StatusGoing    Status = "confirmed-going"
	StatusNotGoing Status = "confirmed-not-going"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusGoing, StatusNotGoing:
		return Status(s), true
	default:
		return "", false
	}
}

// Guest is one invitee-list row. Column naming follows the wedding.guest_list
// table so API responses match what the frontend already consumes.
type Guest struct {
	ID                 int64   `json:"guest_list_id"`
	GroupID            int64   `json:"group_id"`
	GroupIDList        []int64 `json:"group_id_list,omitempty"`
	FirstName          string  `json:"first_name"`
	SecondName         string  `json:"second_name,omitempty"`
	LastName           string  `json:"last_name"`
	Classification     string  `json:"classification"`
	Status             Status  `json:"status"`
	SpecialMessage     string  `json:"special_message"`
	AllergyComment     string  `json:"allergy_comment"`
	SongRecommendation string  `json:"song_recommendation"`
	Hotel              bool    `json:"hotel"`
	UpdatedBy          string  `json:"updated_by"`
}

// DisplayName is the guest's primary given name plus surname.
func (g *Guest) DisplayName() string {
	return g.FirstName + " " + g.LastName
}

// StatusChange is one entry of a bulk RSVP submitted for a whole party.
type StatusChange struct {
	GuestID int64  `json:"guestId"`
	Status  Status `json:"status"`
}

// GuestUpdate carries one guest's field update plus optional batched status
// changes for the rest of the party. Nil optional fields are left untouched.
type GuestUpdate struct {
	GuestID            int64
	Status             Status
	SpecialMessage     *string
	SongRecommendation *string
	AllergyComment     *string
	Hotel              *bool
	UpdatedBy          *string
	StatusChanges      []StatusChange
}

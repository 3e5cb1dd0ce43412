package domain

// Notice is a blocking message shown to the user.
type Notice int

const (
	NoticeInvalidInput Notice = iota
	NoticeTransient
	NoticeWon
	NoticeConceded
)

// Message is the fixed text of the notice.
func (n Notice) Message() string {
	switch n {
	case NoticeInvalidInput:
		return "Invalid letter. Please enter a single letter from A to Z."
	case NoticeTransient:
		return "Something went wrong. Please try again."
	case NoticeWon:
		return "You won! Congratulations!"
	case NoticeConceded:
		return "You gave up. Better luck next time."
	}
	return ""
}

func (n Notice) String() string {
	switch n {
	case NoticeInvalidInput:
		return "invalid-input"
	case NoticeTransient:
		return "transient"
	case NoticeWon:
		return "won"
	case NoticeConceded:
		return "conceded"
	}
	return "unknown"
}

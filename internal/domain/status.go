package domain

type StatusClass string

const (
	GoForLaunch    StatusClass = "go_for_launch"
	ToBeDetermined StatusClass = "to_be_determined"
	ToBeConfirmed  StatusClass = "to_be_confirmed"
)

type ColorClass string

const (
	ColorGo          ColorClass = "go"
	ColorPending     ColorClass = "pending"
	ColorUnconfirmed ColorClass = "unconfirmed"
)

type StatusTag struct {
	Label string
	Color ColorClass
}

// StatusClassFor maps an API status id. Any id other than 1, 2 or 8 means
// the launch is not shown.
func StatusClassFor(id int) (StatusClass, bool) {
	switch id {
	case 1:
		return GoForLaunch, true
	case 2:
		return ToBeDetermined, true
	case 8:
		return ToBeConfirmed, true
	default:
		return "", false
	}
}

var statusTags = map[StatusClass]StatusTag{
	GoForLaunch:    {Label: "Go", Color: ColorGo},
	ToBeDetermined: {Label: "TBD", Color: ColorPending},
	ToBeConfirmed:  {Label: "TBC", Color: ColorUnconfirmed},
}

func StatusLabelFor(c StatusClass) StatusTag {
	if t, ok := statusTags[c]; ok {
		return t
	}
	// zero StatusClass never leaves the catalog
	return StatusTag{Label: string(c)}
}

func (c StatusClass) Valid() bool {
	_, ok := statusTags[c]
	return ok
}

package types

type NavbarData struct {
	IsAuthenticated bool
	UserEmail       string
	IsAdmin         bool
}

type NavbarDataSetter interface {
	SetNavbarData(data NavbarData)
}

type BasePageData struct {
	Title  string
	Navbar NavbarData
}

func (d *BasePageData) SetNavbarData(data NavbarData) {
	d.Navbar = data
}

type HomePageData struct {
	BasePageData
	Notice string
	Error  string
	Stats  StatsData
	Steps  []StepData
}

type StatsData struct {
	MealsDelivered    int
	ActiveDonors      int
	LocationsCovered  int
	OrganizationsFed  int
}

type StepData struct {
	Number      int
	Title       string
	Description string
}

type AboutPageData struct {
	BasePageData
}

type ContactPageData struct {
	BasePageData
	Form        ContactForm
	Error       string
	FieldErrors map[string]string
}

type DonatePageData struct {
	BasePageData
	Form        DonationForm
	Error       string
	FieldErrors map[string]string
}

type RequestPageData struct {
	BasePageData
	Form        RequestForm
	Error       string
	FieldErrors map[string]string
}

type LiveBoardPageData struct {
	BasePageData
	Items   []*BoardItem
	Search  string
	Urgency string
}

type LoginPageData struct {
	BasePageData
	Email string
	Error string
}

type AdminPageData struct {
	BasePageData
	Notice string
	Error  string

	ActiveDonations   []*Donation
	FinishedDonations []*Donation
	PendingRequests   []*Request
	ApprovedRequests  []*Request
	FinishedRequests  []*Request

	RecentMessages []*ContactMessage
}

package handlers

// AppHandlers bundles every handler so the router wires them in one
// place.
type AppHandlers struct {
	Auth    *AuthHandler
	Seeker  *SeekerHandler
	Company *CompanyHandler
	Job     *JobHandler
	Public  *PublicHandler
	Admin   *AdminHandler
}

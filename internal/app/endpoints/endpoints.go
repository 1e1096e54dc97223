package endpoints

// Endpoints groups every endpoint set served by the HTTP router.
type Endpoints struct {
	VikorEndpoint VikorEndpoint
}

package endpoints

// Endpoints groups every endpoint exposed by the service.
type Endpoints struct {
	AggregatorEndpoint AggregatorEndpoint
	ProfileEndpoint    ProfileEndpoint
}

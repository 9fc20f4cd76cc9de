package testharness

const (
	// DefaultRequestPath is where the request document is read from when no path is given.
	DefaultRequestPath = "./model/request.json"
	// ResponseClass tags every serialized response with its logical type.
	ResponseClass = "org.accordproject.helloworld.MyResponse"
	// GreetingPrefix is prepended verbatim to the request input.
	GreetingPrefix = "Hello Fred Blogs "
)

const requestInputKey = "input"

const (
	requestLabel  = "request_json = "
	responseLabel = "response_json = "
)

package testharness

// Request is the decoded request document.
type Request struct {
	Input string `json:"input"`
}

// Response is built from a Request and serialized as class, output.
type Response struct {
	Class  string `json:"class"`
	Output string `json:"output"`
}

// Result holds the texts produced by one pipeline run.
type Result struct {
	RequestJSON  string
	Response     Response
	ResponseJSON string
}

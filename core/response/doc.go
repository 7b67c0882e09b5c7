// Package response provides the per-request response accumulator.
//
// Handlers mutate a *Response (status, headers, body, type hint) while the
// request is processed; nothing reaches the client until Render is called
// by the application once the handler returns.
//
// # Bodies
//
// The body may be nil, a string, a []byte, an io.Reader or any value that
// encodes to JSON:
//
//	res := response.New()
//	res.SetBody(map[string]string{"status": "ok"}) // application/json
//
//	f, _ := os.Open("report.pdf")
//	res.SetType(".pdf")
//	res.SetBody(f) // streamed, closed after Render
//
// Reader bodies that also implement io.Closer are released by Render, or
// by Destroy when the response is abandoned. Destroy is idempotent.
//
// # Status Defaults
//
// A response without an explicit status renders as 200 OK when it has a
// body and 404 Not Found when it does not.
package response

package corrector

import "context"

// StaticClient returns a fixed result for every check. It backs offline runs and
// tests where the remote service must not be contacted.
type StaticClient struct {
	Result *CheckResult
	Err    error
}

// NewOfflineClient returns a client that reports no matches.
func NewOfflineClient() *StaticClient {
	empty := []RawMatch{}
	return &StaticClient{Result: &CheckResult{Matches: &empty}}
}

// Check returns the configured result or error.
func (c *StaticClient) Check(_ context.Context, _, _ string) (*CheckResult, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Result, nil
}

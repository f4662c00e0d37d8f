// `make test-integration` is the simplest way to run these tests.
//
// The tests run the real madmp commands in-process against documents from
// the embedded specdata bucket. No network or external services are
// involved.
package integration

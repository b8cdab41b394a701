// Package handler defines the contracts between the gateway adapter and the
// application it drives: the Application interface the adapter calls into,
// the lifecycle Hook callbacks, and the ResponseCallback the adapter hands
// to the request dispatch path.
package handler

// Package subscription keeps subscription requests in step between Collibra and DataZone.
//
// Forward reacts to a DataZone "Subscription Request Created" event by starting the
// Collibra request creation workflow. Reverse picks up requests approved in Collibra,
// makes sure DataZone holds an approved subscription for them and marks each request
// granted or rejected.
package subscription

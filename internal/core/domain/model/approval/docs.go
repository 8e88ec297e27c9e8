// Package approval models the supervisor-mediated exception path: a
// ShortageRequest blocks its pick task until someone with authority
// approves the reduced quantity or rejects the claim.
package approval

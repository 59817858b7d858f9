// Package domain contains the entities exchanged between the estimator
// service, its client and the orders desk: materials, machine profiles,
// uploaded parts with their analysis blobs, analysis jobs, and sales/work
// orders. The types carry no infrastructure concerns; their JSON tags are
// the wire format of the REST API.
package domain

// Package journal is the embeddable interface to the journaling RAG
// toolkit: it retrieves the daily log entries most relevant to a free-text
// question and forwards an assembled prompt to a local or cloud
// text-generation backend.
//
// The CLI under cmd/sam is a thin wrapper over this package; GUI front
// ends should call it the same way.
package journal

// Package entity defines the domain models for the search feature.
package entity

// Symbol is one instrument in the optional stocks master list.
type Symbol struct {
	Code string `json:"code"` // 6-digit instrument code
	Name string `json:"name"`
}

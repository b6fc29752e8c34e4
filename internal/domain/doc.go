// Package domain contains the core entities of the application (scientists,
// planets and the missions that join them) together with the field predicates
// that must hold before any value is accepted into an entity. It is independent
// of any specific storage or delivery mechanism.
package domain

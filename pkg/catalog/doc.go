// Package catalog holds the declarative machine table: one immutable
// behavior bundle per machine variant, registered by display name.
//
// The table is organized by era: steam machines, basic electric machines,
// the blast furnace family, fusion reactors, and the late-game processing
// multiblocks. Registration order is deliberate; a few entries rely on the
// registry's last-write-wins rule to supersede earlier ones.
package catalog

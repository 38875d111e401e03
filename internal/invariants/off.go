//go:build !invariants

package invariants

// Enabled is true if the module is built with the invariants tag. Checks
// of caller contracts guarded by it compile away otherwise.
const Enabled = false

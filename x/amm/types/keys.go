package types

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_amm"
)

// Administrative roles recognized by the guard layer. The module authority
// holds every role implicitly; further grants live in the role table.
const (
	RoleAdmin  = "admin"
	RolePauser = "pauser"
)

// roleBytes maps role names to their store-key discriminator byte.
var roleBytes = map[string]byte{
	RoleAdmin:  0x01,
	RolePauser: 0x02,
}

// RoleByte resolves a role name to its store discriminator.
func RoleByte(role string) (byte, bool) {
	b, ok := roleBytes[role]
	return b, ok
}

// RoleName resolves a store discriminator back to its role name.
func RoleName(b byte) (string, bool) {
	for name, rb := range roleBytes {
		if rb == b {
			return name, true
		}
	}
	return "", false
}

// ValidRole reports whether role names a recognized administrative role.
func ValidRole(role string) bool {
	_, ok := roleBytes[role]
	return ok
}

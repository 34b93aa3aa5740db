package blacklist

// fallbackAddresses is the embedded list of known-bad addresses used
// whenever the remote feed cannot be consulted. All entries are
// lowercase.
var fallbackAddresses = []string{
	"0x5678901234567890123456789012345678901234",
	"0x0000000000000000000000000000000000000000",
	"0x1111111111111111111111111111111111111111",
	"0x2222222222222222222222222222222222222222",
}

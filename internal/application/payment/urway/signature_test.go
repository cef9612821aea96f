package urway

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitiationHash_KnownVector(t *testing.T) {
	// SHA-256("ORD123|T1|P1|M1|100.00|SAR")
	got := InitiationHash("ORD123", "T1", "P1", "M1", "100.00", "SAR")
	assert.Equal(t, "b15a0f8e8580d115d63ef1edd8a3fc793c87b27bd5edc77a21f1cf6b39f4884f", got)
}

func TestNotificationHash_KnownVector(t *testing.T) {
	// SHA-256("TXN9|M1|000|100.00")
	got := NotificationHash("TXN9", "M1", "000", "100.00")
	assert.Equal(t, "048f2b813aa2f7f1bfa27f52d3724e0a1f7c596998953fc63354ded0e54d22bb", got)
}

func TestInitiationHash_Deterministic(t *testing.T) {
	first := InitiationHash("ORD1", "T1", "P1", "M1", "10.00", "USD")
	second := InitiationHash("ORD1", "T1", "P1", "M1", "10.00", "USD")
	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
	assert.Equal(t, strings.ToLower(first), first, "digest must be lowercase hex")
}

func TestInitiationHash_AnyFieldChangesDigest(t *testing.T) {
	base := []string{"ORD1", "T1", "P1", "M1", "10.00", "USD"}
	baseDigest := InitiationHash(base[0], base[1], base[2], base[3], base[4], base[5])

	for i := range base {
		mutated := make([]string, len(base))
		copy(mutated, base)
		mutated[i] += "x"
		digest := InitiationHash(mutated[0], mutated[1], mutated[2], mutated[3], mutated[4], mutated[5])
		assert.NotEqual(t, baseDigest, digest, "changing field %d must change the digest", i)
	}
}

func TestNotificationHash_EmptyFieldsHashAsEmptyStrings(t *testing.T) {
	assert.NotPanics(t, func() {
		NotificationHash("", "", "", "")
	})
	assert.Equal(t, hashFields("", "", "", ""), NotificationHash("", "", "", ""))
}

func TestVerifyNotificationHash(t *testing.T) {
	digest := NotificationHash("TXN9", "M1", "000", "100.00")

	assert.True(t, VerifyNotificationHash(digest, "TXN9", "M1", "000", "100.00"))
	assert.False(t, VerifyNotificationHash(digest, "TXN9", "M1", "000", "100.01"))
	assert.False(t, VerifyNotificationHash("", "TXN9", "M1", "000", "100.00"))

	// Comparison is exact, no case folding.
	assert.False(t, VerifyNotificationHash(strings.ToUpper(digest), "TXN9", "M1", "000", "100.00"))
}

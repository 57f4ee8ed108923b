package cmd

import (
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/go-bip39"
	"github.com/stretchr/testify/require"

	"github.com/tidepool-zone/tidepool/app"
)

// Test that we can generate valid 12-word mnemonics
func TestGenerateMnemonic12Words(t *testing.T) {
	// Generate 128 bits of entropy (12 words)
	entropy := make([]byte, 16)
	_, err := rand.Read(entropy)
	require.NoError(t, err)

	// Generate mnemonic
	mnemonic, err := bip39.NewMnemonic(entropy)
	require.NoError(t, err)
	require.NotEmpty(t, mnemonic)

	// Validate mnemonic
	require.True(t, bip39.IsMnemonicValid(mnemonic))

	// Check word count
	words := strings.Fields(mnemonic)
	require.Equal(t, 12, len(words))
}

// Test that we can generate valid 24-word mnemonics
func TestGenerateMnemonic24Words(t *testing.T) {
	// Generate 256 bits of entropy (24 words)
	entropy := make([]byte, 32)
	_, err := rand.Read(entropy)
	require.NoError(t, err)

	// Generate mnemonic
	mnemonic, err := bip39.NewMnemonic(entropy)
	require.NoError(t, err)
	require.NotEmpty(t, mnemonic)

	// Validate mnemonic
	require.True(t, bip39.IsMnemonicValid(mnemonic))

	// Check word count
	words := strings.Fields(mnemonic)
	require.Equal(t, 24, len(words))
}

// Test mnemonic validation with checksums
func TestMnemonicValidation(t *testing.T) {
	tests := []struct {
		name      string
		mnemonic  string
		valid     bool
		wordCount int
	}{
		{
			name:      "valid 12-word mnemonic",
			mnemonic:  "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
			valid:     true,
			wordCount: 12,
		},
		{
			name:      "valid 24-word mnemonic",
			mnemonic:  "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art",
			valid:     true,
			wordCount: 24,
		},
		{
			name:      "invalid checksum",
			mnemonic:  "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon ability", // Invalid: last word should be "about"
			valid:     false,
			wordCount: 12,
		},
		{
			name:      "wrong word count",
			mnemonic:  "abandon abandon abandon",
			valid:     false,
			wordCount: 3,
		},
		{
			name:      "invalid word",
			mnemonic:  "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon invalidword",
			valid:     false,
			wordCount: 12,
		},
		{
			name:      "empty mnemonic",
			mnemonic:  "",
			valid:     false,
			wordCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Proper validation using NewSeedWithErrorChecking which validates checksum
			var isValid bool
			if tt.mnemonic == "" {
				isValid = false
			} else {
				_, err := bip39.NewSeedWithErrorChecking(tt.mnemonic, "")
				isValid = err == nil
			}
			require.Equal(t, tt.valid, isValid)

			words := strings.Fields(tt.mnemonic)
			require.Equal(t, tt.wordCount, len(words))
		})
	}
}

// Test entropy generation is cryptographically secure
func TestEntropyGeneration(t *testing.T) {
	// Generate multiple entropy samples
	samples := 100
	entropies := make(map[string]bool)

	for i := 0; i < samples; i++ {
		entropy := make([]byte, 32)
		_, err := rand.Read(entropy)
		require.NoError(t, err)

		// Convert to string for uniqueness check
		entropyStr := string(entropy)

		// Ensure we don't get duplicates (extremely unlikely with crypto/rand)
		require.False(t, entropies[entropyStr], "Duplicate entropy detected - crypto/rand may not be working correctly")
		entropies[entropyStr] = true
	}

	// We should have generated 'samples' unique entropy values
	require.Equal(t, samples, len(entropies))
}

// Test that fixed entropy always derives the same mnemonic
func TestDeterministicMnemonic(t *testing.T) {
	entropy := make([]byte, 16) // all-zero entropy, standard BIP39 test vector

	mnemonic1, err := bip39.NewMnemonic(entropy)
	require.NoError(t, err)

	mnemonic2, err := bip39.NewMnemonic(entropy)
	require.NoError(t, err)

	require.Equal(t, mnemonic1, mnemonic2)
	require.Equal(t, "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about", mnemonic1)
}

// Test that the BIP39 passphrase changes the derived seed
func TestMnemonicWithPassphrase(t *testing.T) {
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	seedNoPass := bip39.NewSeed(mnemonic, "")
	seedWithPass := bip39.NewSeed(mnemonic, "TREZOR")

	require.Len(t, seedNoPass, 64)
	require.Len(t, seedWithPass, 64)
	require.NotEqual(t, seedNoPass, seedWithPass)
}

// Test key derivation from mnemonic produces consistent results
func TestKeyDerivationConsistency(t *testing.T) {
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	// Derive key twice with same parameters
	hdPath := hd.CreateHDPath(sdk.GetConfig().GetCoinType(), 0, 0)

	// First derivation
	masterPriv, ch := hd.ComputeMastersFromSeed(bip39.NewSeed(mnemonic, ""))
	derivedPriv, err := hd.DerivePrivateKeyForPath(masterPriv, ch, hdPath.String())
	require.NoError(t, err)

	// Second derivation
	masterPriv2, ch2 := hd.ComputeMastersFromSeed(bip39.NewSeed(mnemonic, ""))
	derivedPriv2, err := hd.DerivePrivateKeyForPath(masterPriv2, ch2, hdPath.String())
	require.NoError(t, err)

	// Keys should be identical
	require.Equal(t, derivedPriv, derivedPriv2)
}

// Test different HD paths produce different keys
func TestHDPathDifferentiation(t *testing.T) {
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	coinType := sdk.GetConfig().GetCoinType()

	// Derive keys with different paths
	hdPath1 := hd.CreateHDPath(coinType, 0, 0)
	hdPath2 := hd.CreateHDPath(coinType, 0, 1)
	hdPath3 := hd.CreateHDPath(coinType, 1, 0)

	masterPriv, ch := hd.ComputeMastersFromSeed(bip39.NewSeed(mnemonic, ""))

	key1, err := hd.DerivePrivateKeyForPath(masterPriv, ch, hdPath1.String())
	require.NoError(t, err)

	key2, err := hd.DerivePrivateKeyForPath(masterPriv, ch, hdPath2.String())
	require.NoError(t, err)

	key3, err := hd.DerivePrivateKeyForPath(masterPriv, ch, hdPath3.String())
	require.NoError(t, err)

	// All keys should be different
	require.NotEqual(t, key1, key2)
	require.NotEqual(t, key1, key3)
	require.NotEqual(t, key2, key3)
}

// Test AddKeyCommand with 12-word mnemonic
func TestAddKeyCommand12Words(t *testing.T) {
	// Create temporary keyring
	tmpDir := t.TempDir()

	// Initialize SDK config
	initSDKConfig()

	// Create keyring
	kr, err := keyring.New("test", keyring.BackendTest, tmpDir, nil, app.MakeEncodingConfig().Codec)
	require.NoError(t, err)

	// Generate 12-word mnemonic directly
	entropy := make([]byte, 16) // 128 bits for 12 words
	_, err = rand.Read(entropy)
	require.NoError(t, err)

	mnemonic, err := bip39.NewMnemonic(entropy)
	require.NoError(t, err)

	// Validate it's a 12-word mnemonic
	words := strings.Fields(mnemonic)
	require.Equal(t, 12, len(words))

	// Create account with the mnemonic
	hdPath := hd.CreateHDPath(sdk.GetConfig().GetCoinType(), 0, 0)
	key, err := kr.NewAccount("testkey", mnemonic, keyring.DefaultBIP39Passphrase, hdPath.String(), hd.Secp256k1)
	require.NoError(t, err)
	require.NotNil(t, key)
	require.Equal(t, "testkey", key.Name)

	// Verify key was created
	retrievedKey, err := kr.Key("testkey")
	require.NoError(t, err)
	require.NotNil(t, retrievedKey)
	require.Equal(t, "testkey", retrievedKey.Name)
}

// Test AddKeyCommand with 24-word mnemonic
func TestAddKeyCommand24Words(t *testing.T) {
	// Create temporary keyring
	tmpDir := t.TempDir()

	// Initialize SDK config
	initSDKConfig()

	// Create keyring
	kr, err := keyring.New("test", keyring.BackendTest, tmpDir, nil, app.MakeEncodingConfig().Codec)
	require.NoError(t, err)

	// Generate 24-word mnemonic directly
	entropy := make([]byte, 32) // 256 bits for 24 words
	_, err = rand.Read(entropy)
	require.NoError(t, err)

	mnemonic, err := bip39.NewMnemonic(entropy)
	require.NoError(t, err)

	// Validate it's a 24-word mnemonic
	words := strings.Fields(mnemonic)
	require.Equal(t, 24, len(words))

	// Create account with the mnemonic
	hdPath := hd.CreateHDPath(sdk.GetConfig().GetCoinType(), 0, 0)
	key, err := kr.NewAccount("testkey24", mnemonic, keyring.DefaultBIP39Passphrase, hdPath.String(), hd.Secp256k1)
	require.NoError(t, err)
	require.NotNil(t, key)
	require.Equal(t, "testkey24", key.Name)

	// Verify key was created
	retrievedKey, err := kr.Key("testkey24")
	require.NoError(t, err)
	require.NotNil(t, retrievedKey)
	require.Equal(t, "testkey24", retrievedKey.Name)
}

// Test AddKeyCommand with invalid mnemonic length
func TestAddKeyCommandInvalidLength(t *testing.T) {
	// Initialize SDK config
	initSDKConfig()

	// Valid case: 12 words (128 bits)
	entropy12 := make([]byte, 16)
	_, err := rand.Read(entropy12)
	require.NoError(t, err)

	mnemonic12, err := bip39.NewMnemonic(entropy12)
	require.NoError(t, err)
	words12 := strings.Fields(mnemonic12)
	require.Equal(t, 12, len(words12))

	// Valid case: 24 words (256 bits)
	entropy24 := make([]byte, 32)
	_, err = rand.Read(entropy24)
	require.NoError(t, err)

	mnemonic24, err := bip39.NewMnemonic(entropy24)
	require.NoError(t, err)
	words24 := strings.Fields(mnemonic24)
	require.Equal(t, 24, len(words24))

	// 18 words (192 bits) is valid BIP39, but the add command only accepts 12 or 24
	entropy18 := make([]byte, 24) // 192 bits
	_, err = rand.Read(entropy18)
	require.NoError(t, err)

	mnemonic18, err := bip39.NewMnemonic(entropy18)
	require.NoError(t, err) // BIP39 lib accepts it
	words18 := strings.Fields(mnemonic18)
	require.Equal(t, 18, len(words18))
	require.NotEqual(t, 12, len(words18))
	require.NotEqual(t, 24, len(words18))
}

// Test RecoverKeyCommand with valid mnemonic
func TestRecoverKeyCommand(t *testing.T) {
	// Create temporary keyring
	tmpDir := t.TempDir()

	// Initialize SDK config
	initSDKConfig()

	// Create encoding config
	encodingConfig := app.MakeEncodingConfig()

	// Create keyring
	kr, err := keyring.New("test", keyring.BackendTest, tmpDir, nil, encodingConfig.Codec)
	require.NoError(t, err)

	// Test the key recovery functionality directly without the command framework
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	// Recover key using keyring directly
	hdPath := hd.CreateHDPath(sdk.GetConfig().GetCoinType(), 0, 0)
	key, err := kr.NewAccount("recoveredkey", mnemonic, keyring.DefaultBIP39Passphrase, hdPath.String(), hd.Secp256k1)
	require.NoError(t, err)
	require.NotNil(t, key)
	require.Equal(t, "recoveredkey", key.Name)

	// Verify key was recovered correctly
	retrievedKey, err := kr.Key("recoveredkey")
	require.NoError(t, err)
	require.NotNil(t, retrievedKey)
	require.Equal(t, "recoveredkey", retrievedKey.Name)

	// Verify addresses match
	addr1, err := key.GetAddress()
	require.NoError(t, err)
	addr2, err := retrievedKey.GetAddress()
	require.NoError(t, err)
	require.Equal(t, addr1, addr2)
}

// Test that recovered keys have consistent addresses
func TestRecoverKeyConsistency(t *testing.T) {
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	// Create two temporary keyrings
	tmpDir1 := t.TempDir()
	tmpDir2 := t.TempDir()

	// Initialize SDK config
	initSDKConfig()

	// Create first keyring and recover key
	kr1, err := keyring.New("test", keyring.BackendTest, tmpDir1, nil, app.MakeEncodingConfig().Codec)
	require.NoError(t, err)

	hdPath := hd.CreateHDPath(sdk.GetConfig().GetCoinType(), 0, 0)
	key1, err := kr1.NewAccount("key1", mnemonic, keyring.DefaultBIP39Passphrase, hdPath.String(), hd.Secp256k1)
	require.NoError(t, err)

	// Create second keyring and recover same key
	kr2, err := keyring.New("test", keyring.BackendTest, tmpDir2, nil, app.MakeEncodingConfig().Codec)
	require.NoError(t, err)

	key2, err := kr2.NewAccount("key2", mnemonic, keyring.DefaultBIP39Passphrase, hdPath.String(), hd.Secp256k1)
	require.NoError(t, err)

	// Addresses should be identical
	addr1, err := key1.GetAddress()
	require.NoError(t, err)

	addr2, err := key2.GetAddress()
	require.NoError(t, err)

	require.Equal(t, addr1.String(), addr2.String())
}

// Test ListKeysCommand
func TestListKeysCommand(t *testing.T) {
	// Create temporary keyring
	tmpDir := t.TempDir()

	// Initialize SDK config
	initSDKConfig()

	// Create keyring
	kr, err := keyring.New("test", keyring.BackendTest, tmpDir, nil, app.MakeEncodingConfig().Codec)
	require.NoError(t, err)

	// Add some test keys with different mnemonics to avoid duplicate addresses
	hdPath := hd.CreateHDPath(sdk.GetConfig().GetCoinType(), 0, 0)

	entropy1 := make([]byte, 32)
	_, err = rand.Read(entropy1)
	require.NoError(t, err)
	mnemonic1, err := bip39.NewMnemonic(entropy1)
	require.NoError(t, err)
	_, err = kr.NewAccount("key1", mnemonic1, keyring.DefaultBIP39Passphrase, hdPath.String(), hd.Secp256k1)
	require.NoError(t, err)

	entropy2 := make([]byte, 32)
	_, err = rand.Read(entropy2)
	require.NoError(t, err)
	mnemonic2, err := bip39.NewMnemonic(entropy2)
	require.NoError(t, err)
	_, err = kr.NewAccount("key2", mnemonic2, keyring.DefaultBIP39Passphrase, hdPath.String(), hd.Secp256k1)
	require.NoError(t, err)

	// Test the list keys functionality by listing from keyring
	keys, err := kr.List()
	require.NoError(t, err)
	require.Len(t, keys, 2)

	// Verify both keys are present
	keyNames := make(map[string]bool)
	for _, key := range keys {
		keyNames[key.Name] = true
	}
	require.True(t, keyNames["key1"], "key1 should be in the keyring")
	require.True(t, keyNames["key2"], "key2 should be in the keyring")
}

// Benchmark mnemonic generation
func BenchmarkMnemonicGeneration12Words(b *testing.B) {
	for i := 0; i < b.N; i++ {
		entropy := make([]byte, 16)
		_, _ = rand.Read(entropy)
		_, _ = bip39.NewMnemonic(entropy)
	}
}

func BenchmarkMnemonicGeneration24Words(b *testing.B) {
	for i := 0; i < b.N; i++ {
		entropy := make([]byte, 32)
		_, _ = rand.Read(entropy)
		_, _ = bip39.NewMnemonic(entropy)
	}
}

// Benchmark mnemonic validation
func BenchmarkMnemonicValidation(b *testing.B) {
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	for i := 0; i < b.N; i++ {
		_ = bip39.IsMnemonicValid(mnemonic)
	}
}

// Test that mnemonic generation works correctly
func TestMnemonicBackupWarning(t *testing.T) {
	tmpDir := t.TempDir()
	initSDKConfig()

	// Create keyring
	kr, err := keyring.New("test", keyring.BackendTest, tmpDir, nil, app.MakeEncodingConfig().Codec)
	require.NoError(t, err)

	// Generate a 12-word mnemonic
	entropy := make([]byte, 16) // 128 bits for 12 words
	_, err = rand.Read(entropy)
	require.NoError(t, err)

	mnemonic, err := bip39.NewMnemonic(entropy)
	require.NoError(t, err)

	// Validate mnemonic
	require.True(t, bip39.IsMnemonicValid(mnemonic), "Generated mnemonic should be valid")

	// Verify it's a 12-word mnemonic
	words := strings.Fields(mnemonic)
	require.Equal(t, 12, len(words), "Should generate 12-word mnemonic")

	// Create account with the mnemonic
	hdPath := hd.CreateHDPath(sdk.GetConfig().GetCoinType(), 0, 0)
	key, err := kr.NewAccount("testkey", mnemonic, keyring.DefaultBIP39Passphrase, hdPath.String(), hd.Secp256k1)
	require.NoError(t, err)
	require.NotNil(t, key)
	require.Equal(t, "testkey", key.Name)
}

// Test export and import key functionality
func TestExportImportKey(t *testing.T) {
	tmpDir := t.TempDir()
	initSDKConfig()

	// Create keyring and add a key
	kr, err := keyring.New("test", keyring.BackendTest, tmpDir, nil, app.MakeEncodingConfig().Codec)
	require.NoError(t, err)

	hdPath := hd.CreateHDPath(sdk.GetConfig().GetCoinType(), 0, 0)
	originalKey, err := kr.NewAccount("exportkey", "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about", keyring.DefaultBIP39Passphrase, hdPath.String(), hd.Secp256k1)
	require.NoError(t, err)

	// Export the key
	passphrase := "testpassphrase123"
	armor, err := kr.ExportPrivKeyArmor("exportkey", passphrase)
	require.NoError(t, err)
	require.NotEmpty(t, armor)

	// Write to temporary file
	tmpFile := filepath.Join(tmpDir, "exported_key.txt")
	err = os.WriteFile(tmpFile, []byte(armor), 0600)
	require.NoError(t, err)

	// Create a new keyring for import
	tmpDir2 := t.TempDir()
	kr2, err := keyring.New("test", keyring.BackendTest, tmpDir2, nil, app.MakeEncodingConfig().Codec)
	require.NoError(t, err)

	// Import the key
	err = kr2.ImportPrivKey("importedkey", armor, passphrase)
	require.NoError(t, err)

	// Verify imported key matches original
	importedKey, err := kr2.Key("importedkey")
	require.NoError(t, err)

	originalAddr, err := originalKey.GetAddress()
	require.NoError(t, err)

	importedAddr, err := importedKey.GetAddress()
	require.NoError(t, err)

	require.Equal(t, originalAddr.String(), importedAddr.String())
}

package devnet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pet-locator/internal/config"
	"github.com/MKhiriev/go-pet-locator/internal/logger"
	"github.com/MKhiriev/go-pet-locator/models"
)

const (
	alice = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	bob   = "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestDevnet(t *testing.T, delay time.Duration) (*Devnet, *fakeClock) {
	t.Helper()

	d := New(config.DevnetConfig{ConfirmationDelay: delay, ProofKey: "devnet-test-key"}, logger.Nop())
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	d.Ledger.(*ledger).now = clock.Now
	return d, clock
}

func createRecord(t *testing.T, d *Devnet, signer, id string, lat, lon int64) string {
	t.Helper()
	ctx := context.Background()

	input, err := d.Relayer.Encrypt(ctx, models.EncryptRequest{
		ContractAddress: d.Ledger.Address(),
		UserAddress:     signer,
		Value:           lat,
	})
	require.NoError(t, err)

	hash, err := d.Ledger.CreateRecord(ctx, signer, models.CreateRecordRequest{
		ID:             id,
		Name:           "Rex",
		EncryptedValue: input.Handle,
		InputProof:     input.Proof,
		PublicValue1:   lon,
		Description:    "Pet location data",
	})
	require.NoError(t, err)
	return hash
}

func decryptRecord(t *testing.T, d *Devnet, id string) models.DecryptionResult {
	t.Helper()
	ctx := context.Background()

	handle, err := d.Ledger.GetCiphertextHandle(ctx, id)
	require.NoError(t, err)

	result, err := d.Relayer.PublicDecrypt(ctx, models.PublicDecryptRequest{
		Handles:         []models.Handle{handle},
		ContractAddress: d.Ledger.Address(),
	})
	require.NoError(t, err)
	return result
}

func TestDevnet_ContractAddressIsChecksummed(t *testing.T) {
	d, _ := newTestDevnet(t, 0)

	addr := d.Ledger.Address()
	assert.Len(t, addr, 42)
	assert.Equal(t, "0x", addr[:2])
}

func TestDevnet_CreateRevealFlow(t *testing.T) {
	d, clock := newTestDevnet(t, 0)
	ctx := context.Background()

	hash := createRecord(t, d, alice, "pet-1", 37774900, -122419400)

	receipt, err := d.Ledger.Receipt(ctx, hash)
	require.NoError(t, err)
	assert.Equal(t, models.TxConfirmed, receipt.Status)

	assert.Equal(t, []string{"pet-1"}, d.Ledger.ListRecordIDs(ctx))

	record, err := d.Ledger.GetRecord(ctx, "pet-1")
	require.NoError(t, err)
	assert.Equal(t, models.Record{
		ID:           "pet-1",
		Name:         "Rex",
		Creator:      alice,
		Timestamp:    clock.now.Unix(),
		PublicValue1: -122419400,
		Description:  "Pet location data",
	}, record)

	result := decryptRecord(t, d, "pet-1")
	handle, err := d.Ledger.GetCiphertextHandle(ctx, "pet-1")
	require.NoError(t, err)
	assert.Equal(t, int64(37774900), result.ClearValues[handle])
	assert.Equal(t, EncodeInt256(37774900), []byte(result.AbiEncodedClearValues))

	hash, err = d.Ledger.SubmitVerification(ctx, bob, "pet-1", models.VerifyRequest{
		AbiEncodedClearValues: result.AbiEncodedClearValues,
		DecryptionProof:       result.DecryptionProof,
	})
	require.NoError(t, err)

	receipt, err = d.Ledger.Receipt(ctx, hash)
	require.NoError(t, err)
	assert.Equal(t, models.TxConfirmed, receipt.Status)

	record, err = d.Ledger.GetRecord(ctx, "pet-1")
	require.NoError(t, err)
	assert.True(t, record.IsVerified)
	assert.Equal(t, int64(37774900), record.DecryptedValue)

	_, err = d.Ledger.SubmitVerification(ctx, bob, "pet-1", models.VerifyRequest{
		AbiEncodedClearValues: result.AbiEncodedClearValues,
		DecryptionProof:       result.DecryptionProof,
	})
	require.ErrorIs(t, err, ErrAlreadyVerified)
}

func TestDevnet_ConfirmationDelay(t *testing.T) {
	d, clock := newTestDevnet(t, 5*time.Second)
	ctx := context.Background()

	hash := createRecord(t, d, alice, "pet-1", 1, 2)

	receipt, err := d.Ledger.Receipt(ctx, hash)
	require.NoError(t, err)
	assert.Equal(t, models.TxPending, receipt.Status)
	assert.Empty(t, d.Ledger.ListRecordIDs(ctx))

	_, err = d.Ledger.GetRecord(ctx, "pet-1")
	require.ErrorIs(t, err, ErrRecordNotFound)

	clock.now = clock.now.Add(5 * time.Second)

	receipt, err = d.Ledger.Receipt(ctx, hash)
	require.NoError(t, err)
	assert.Equal(t, models.TxConfirmed, receipt.Status)
	assert.Equal(t, []string{"pet-1"}, d.Ledger.ListRecordIDs(ctx))
}

func TestDevnet_ConcurrentVerificationReverts(t *testing.T) {
	d, clock := newTestDevnet(t, 0)
	ctx := context.Background()

	createRecord(t, d, alice, "pet-1", 1, 2)
	result := decryptRecord(t, d, "pet-1")
	req := models.VerifyRequest{
		AbiEncodedClearValues: result.AbiEncodedClearValues,
		DecryptionProof:       result.DecryptionProof,
	}

	d.Ledger.(*ledger).delay = time.Second

	first, err := d.Ledger.SubmitVerification(ctx, alice, "pet-1", req)
	require.NoError(t, err)
	second, err := d.Ledger.SubmitVerification(ctx, bob, "pet-1", req)
	require.NoError(t, err)

	clock.now = clock.now.Add(time.Second)

	receipt, err := d.Ledger.Receipt(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, models.TxConfirmed, receipt.Status)

	receipt, err = d.Ledger.Receipt(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, models.TxFailed, receipt.Status)
	assert.Contains(t, receipt.Error, "Data already verified")
}

func TestDevnet_DuplicateRecordID(t *testing.T) {
	d, _ := newTestDevnet(t, time.Second)
	ctx := context.Background()

	createRecord(t, d, alice, "pet-1", 1, 2)

	input, err := d.Relayer.Encrypt(ctx, models.EncryptRequest{ContractAddress: d.Ledger.Address(), UserAddress: alice, Value: 3})
	require.NoError(t, err)

	_, err = d.Ledger.CreateRecord(ctx, alice, models.CreateRecordRequest{
		ID: "pet-1", Name: "Max", EncryptedValue: input.Handle, InputProof: input.Proof,
	})
	require.ErrorIs(t, err, ErrRecordAlreadyExists)
}

func TestDevnet_InputProofBoundToSigner(t *testing.T) {
	d, _ := newTestDevnet(t, 0)
	ctx := context.Background()

	input, err := d.Relayer.Encrypt(ctx, models.EncryptRequest{ContractAddress: d.Ledger.Address(), UserAddress: alice, Value: 1})
	require.NoError(t, err)

	_, err = d.Ledger.CreateRecord(ctx, bob, models.CreateRecordRequest{
		ID: "pet-1", Name: "Rex", EncryptedValue: input.Handle, InputProof: input.Proof,
	})
	require.ErrorIs(t, err, ErrInvalidInputProof)

	_, err = d.Ledger.CreateRecord(ctx, alice, models.CreateRecordRequest{
		ID: "pet-1", Name: "Rex", EncryptedValue: "0xdead", InputProof: input.Proof,
	})
	require.ErrorIs(t, err, ErrUnknownHandle)

	_, err = d.Ledger.CreateRecord(ctx, alice, models.CreateRecordRequest{ID: "pet-1"})
	require.ErrorIs(t, err, ErrInvalidData)
}

func TestDevnet_PublicDecryptRequiresConfirmedRecord(t *testing.T) {
	d, _ := newTestDevnet(t, 0)
	ctx := context.Background()

	input, err := d.Relayer.Encrypt(ctx, models.EncryptRequest{ContractAddress: d.Ledger.Address(), UserAddress: alice, Value: 1})
	require.NoError(t, err)

	_, err = d.Relayer.PublicDecrypt(ctx, models.PublicDecryptRequest{
		Handles:         []models.Handle{input.Handle},
		ContractAddress: d.Ledger.Address(),
	})
	require.ErrorIs(t, err, ErrHandleNotDecryptable)

	_, err = d.Relayer.PublicDecrypt(ctx, models.PublicDecryptRequest{
		Handles:         []models.Handle{"0xunknown"},
		ContractAddress: d.Ledger.Address(),
	})
	require.ErrorIs(t, err, ErrUnknownHandle)

	_, err = d.Relayer.PublicDecrypt(ctx, models.PublicDecryptRequest{ContractAddress: d.Ledger.Address()})
	require.ErrorIs(t, err, ErrInvalidData)
}

func TestDevnet_TamperedDecryptionProof(t *testing.T) {
	d, _ := newTestDevnet(t, 0)
	ctx := context.Background()

	createRecord(t, d, alice, "pet-1", 1, 2)
	result := decryptRecord(t, d, "pet-1")

	_, err := d.Ledger.SubmitVerification(ctx, alice, "pet-1", models.VerifyRequest{
		AbiEncodedClearValues: EncodeInt256(999),
		DecryptionProof:       result.DecryptionProof,
	})
	require.ErrorIs(t, err, ErrInvalidDecryptionProof)

	_, err = d.Ledger.SubmitVerification(ctx, alice, "missing", models.VerifyRequest{})
	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestDevnet_EncryptRejectsBadAddresses(t *testing.T) {
	d, _ := newTestDevnet(t, 0)

	_, err := d.Relayer.Encrypt(context.Background(), models.EncryptRequest{ContractAddress: "nope", UserAddress: alice})
	require.ErrorIs(t, err, ErrInvalidData)

	_, err = d.Relayer.Encrypt(context.Background(), models.EncryptRequest{ContractAddress: d.Ledger.Address(), UserAddress: "0x12"})
	require.ErrorIs(t, err, ErrInvalidData)
}

func TestDevnet_UnknownTransaction(t *testing.T) {
	d, _ := newTestDevnet(t, 0)

	_, err := d.Ledger.Receipt(context.Background(), "0xmissing")
	require.ErrorIs(t, err, ErrUnknownTransaction)
}

func TestDevnet_Sessions(t *testing.T) {
	d, _ := newTestDevnet(t, 0)

	token, err := d.Sessions.IssueSession(alice, time.Hour)
	require.NoError(t, err)

	parsed, err := d.Sessions.ParseSession(token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, alice, parsed.Address)

	_, err = d.Sessions.ParseSession(token.SignedString + "x")
	require.ErrorIs(t, err, ErrInvalidSession)
}

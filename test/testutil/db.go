package testutil

import (
	"testing"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	storetypes "cosmossdk.io/store/types"
	"github.com/cometbft/cometbft/crypto/secp256k1"
	"github.com/cosmos/cosmos-sdk/runtime"
	cosmostestutil "github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
)

type TestDB struct {
	StoreKey     *storetypes.KVStoreKey
	Key          *storetypes.TransientStoreKey
	StoreService store.KVStoreService
	TestCtx      cosmostestutil.TestContext
	Store        storetypes.KVStore
	SB           *collections.SchemaBuilder
}

// NewTestDB opens an in-memory store for a single module under storeKey.
func NewTestDB(t *testing.T, storeKey string) TestDB {
	t.Helper()

	var testDB TestDB
	testDB.StoreKey = storetypes.NewKVStoreKey(storeKey)
	testDB.Key = storetypes.NewTransientStoreKey("transient_" + storeKey)
	testDB.StoreService = runtime.NewKVStoreService(testDB.StoreKey)
	testDB.TestCtx = cosmostestutil.DefaultContextWithDB(t, testDB.StoreKey, testDB.Key)
	testDB.Store = runtime.KVStoreAdapter(testDB.StoreService.OpenKVStore(testDB.TestCtx.Ctx))
	testDB.SB = collections.NewSchemaBuilder(testDB.StoreService)
	return testDB
}

// CtxAt returns the test context moved to the given block height.
func (db TestDB) CtxAt(height int64) sdk.Context {
	return db.TestCtx.Ctx.WithBlockHeight(height)
}

// GovAuthority is the address every privileged message in the tests is signed by.
func GovAuthority() string {
	return authtypes.NewModuleAddress(govtypes.ModuleName).String()
}

// NewAccountAddress returns a fresh random account address.
func NewAccountAddress() sdk.AccAddress {
	return sdk.AccAddress(secp256k1.GenPrivKey().PubKey().Address())
}

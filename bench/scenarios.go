package bench

import (
	"context"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/ZigaMr/sapphire-precompiles/abi"
	"github.com/ZigaMr/sapphire-precompiles/crypto/signature"
	"github.com/ZigaMr/sapphire-precompiles/crypto/signature/memory"
	"github.com/ZigaMr/sapphire-precompiles/precompile"
)

var (
	schemaDeoxysII = abi.MustNewSchema("bytes32", "bytes32", "bytes", "bytes")
	schemaRandom   = abi.MustNewSchema("uint256", "bytes")
	schemaKeypair  = abi.MustNewSchema("uint256", "bytes")
	schemaSign     = abi.MustNewSchema("uint256", "bytes", "bytes", "bytes")
	schemaVerify   = abi.MustNewSchema("uint256", "bytes", "bytes", "bytes", "bytes")
	resultKeypair  = abi.MustNewSchema("bytes", "bytes")
)

func stateSeed(state *State, label string) [32]byte {
	var id [8]byte
	binary.BigEndian.PutUint64(id[:], state.ID)
	return sha256.Sum256(append([]byte(label), id[:]...))
}

type deoxysII struct{}

type deoxysIIState struct {
	sealInput []byte
	key       [32]byte
	nonce     [32]byte
}

func (b *deoxysII) Name() string {
	return "deoxysii"
}

func (b *deoxysII) Prepare(_ context.Context, state *State) error {
	s := &deoxysIIState{
		key:   stateSeed(state, "deoxysii key"),
		nonce: stateSeed(state, "deoxysii nonce"),
	}
	var err error
	if s.sealInput, err = schemaDeoxysII.Encode(s.key, s.nonce, make([]byte, 256), []byte("bench")); err != nil {
		return err
	}
	state.State = s
	return nil
}

func (b *deoxysII) Scenario(_ context.Context, state *State) (uint64, error) {
	s := state.State.(*deoxysIIState)

	sealed, err := state.Dispatcher.Dispatch(precompile.DeoxysIISeal, s.sealInput)
	if err != nil {
		return 0, err
	}
	openInput, err := schemaDeoxysII.Encode(s.key, s.nonce, sealed, []byte("bench"))
	if err != nil {
		return 0, err
	}
	if _, err = state.Dispatcher.Dispatch(precompile.DeoxysIIOpen, openInput); err != nil {
		return 0, err
	}
	return 2, nil
}

type x25519 struct{}

func (b *x25519) Name() string {
	return "x25519"
}

func (b *x25519) Scenario(_ context.Context, state *State) (uint64, error) {
	private := stateSeed(state, "x25519")
	public, err := state.Dispatcher.Dispatch(precompile.Curve25519ComputePublic, private[:])
	if err != nil {
		return 0, err
	}
	if _, err = state.Dispatcher.Dispatch(precompile.X25519Derive, append(public, private[:]...)); err != nil {
		return 0, err
	}
	return 2, nil
}

type randomBytes struct{}

func (b *randomBytes) Name() string {
	return "random_bytes"
}

func (b *randomBytes) Scenario(_ context.Context, state *State) (uint64, error) {
	input, err := schemaRandom.Encode(big.NewInt(32), []byte("bench"))
	if err != nil {
		return 0, err
	}
	if _, err = state.Dispatcher.Dispatch(precompile.RandomBytes, input); err != nil {
		return 0, err
	}
	return 1, nil
}

type signVerify struct {
	sigType signature.Type
}

type signVerifyState struct {
	signInput []byte
	public    []byte
	context   []byte
	message   []byte
}

func (b *signVerify) Name() string {
	return "sign_verify_" + b.sigType.String()
}

func (b *signVerify) Prepare(_ context.Context, state *State) error {
	code := big.NewInt(int64(b.sigType))
	seed := stateSeed(state, b.Name())

	seedBytes := seed[:]
	if b.sigType == signature.Secp384r1PrehashedSha384 {
		wide := sha512.Sum384(seedBytes)
		seedBytes = wide[:]
	}

	input, err := schemaKeypair.Encode(code, seedBytes)
	if err != nil {
		return err
	}
	out, err := state.Dispatcher.Dispatch(precompile.KeypairGenerate, input)
	if err != nil {
		return fmt.Errorf("keypair generation failed: %w", err)
	}
	keypair, err := resultKeypair.Decode(out)
	if err != nil {
		return err
	}

	s := &signVerifyState{public: keypair.Bytes(0)}
	s.context, s.message = memory.PrepareMessage(b.sigType, []byte("bench"), []byte("benchmark message"))
	if s.signInput, err = schemaSign.Encode(code, keypair.Bytes(1), s.context, s.message); err != nil {
		return err
	}
	state.State = s
	return nil
}

func (b *signVerify) Scenario(_ context.Context, state *State) (uint64, error) {
	s := state.State.(*signVerifyState)

	sig, err := state.Dispatcher.Dispatch(precompile.Sign, s.signInput)
	if err != nil {
		return 0, err
	}
	input, err := schemaVerify.Encode(big.NewInt(int64(b.sigType)), s.public, s.context, s.message, sig)
	if err != nil {
		return 0, err
	}
	if _, err = state.Dispatcher.Dispatch(precompile.Verify, input); err != nil {
		return 0, err
	}
	return 2, nil
}

func init() {
	RegisterBenchmark(&deoxysII{})
	RegisterBenchmark(&x25519{})
	RegisterBenchmark(&randomBytes{})
	for _, t := range signature.Types() {
		RegisterBenchmark(&signVerify{sigType: t})
	}
}

package zhx

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/fystack/contract-gateway/internal/chain"
	"github.com/fystack/contract-gateway/internal/chain/chaintest"
)

var (
	alice = common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	bob   = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
)

type TokenTestSuite struct {
	suite.Suite
	chain  *chaintest.Chain
	token  *Token
	sender common.Address
	ctx    context.Context
}

func (s *TokenTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.chain = chaintest.New(s.T())
	s.sender = s.chain.Provider.Sender()

	token, receipt, err := Deploy(s.ctx, s.chain.Provider)
	s.Require().NoError(err)
	s.Require().True(receipt.Succeeded())
	s.Require().Equal(token.Address(), receipt.ContractAddress)
	s.token = token
}

func TestTokenTestSuite(t *testing.T) {
	suite.Run(t, new(TokenTestSuite))
}

func (s *TokenTestSuite) mint(to common.Address, amount int64) {
	_, err := s.token.Mint(s.ctx, to, big.NewInt(amount))
	s.Require().NoError(err)
}

func (s *TokenTestSuite) balance(owner common.Address) int64 {
	bal, err := s.token.BalanceOf(s.ctx, owner)
	s.Require().NoError(err)
	return bal.Int64()
}

func (s *TokenTestSuite) TestMetadata() {
	name, err := s.token.Name(s.ctx)
	s.Require().NoError(err)
	s.Equal("ZHXToken", name)

	symbol, err := s.token.Symbol(s.ctx)
	s.Require().NoError(err)
	s.Equal("ZHX", symbol)

	decimals, err := s.token.Decimals(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint8(18), decimals)

	supply, err := s.token.TotalSupply(s.ctx)
	s.Require().NoError(err)
	s.Zero(supply.Sign())
}

func (s *TokenTestSuite) TestMintTransferBalance() {
	s.mint(s.sender, 1000)

	receipt, err := s.token.Transfer(s.ctx, alice, big.NewInt(300))
	s.Require().NoError(err)
	s.Equal("0x1", receipt.StatusHex())

	events := s.token.TransferEvents(receipt.Logs)
	s.Require().Len(events, 1)
	s.Equal(s.sender, events[0].From)
	s.Equal(alice, events[0].To)
	s.Equal(int64(300), events[0].Value.Int64())

	s.Equal(int64(700), s.balance(s.sender))
	s.Equal(int64(300), s.balance(alice))

	supply, err := s.token.TotalSupply(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1000), supply.Int64())
}

func (s *TokenTestSuite) TestTransferInsufficientBalanceReverts() {
	receipt, err := s.token.Transfer(s.ctx, alice, big.NewInt(1))
	s.Require().Error(err)

	var failed *chain.TxFailedError
	s.Require().ErrorAs(err, &failed)
	s.Require().NotNil(receipt)
	s.Equal("0x0", receipt.StatusHex())
	s.Equal(int64(0), s.balance(alice))
}

func (s *TokenTestSuite) TestApproveAllowanceTransferFrom() {
	// A single signing key means the owner approves itself and spends its
	// own allowance.
	s.mint(s.sender, 500)

	_, err := s.token.Approve(s.ctx, s.sender, big.NewInt(200))
	s.Require().NoError(err)

	allowance, err := s.token.Allowance(s.ctx, s.sender, s.sender)
	s.Require().NoError(err)
	s.Equal(int64(200), allowance.Int64())

	_, err = s.token.TransferFrom(s.ctx, s.sender, bob, big.NewInt(150))
	s.Require().NoError(err)

	allowance, err = s.token.Allowance(s.ctx, s.sender, s.sender)
	s.Require().NoError(err)
	s.Equal(int64(50), allowance.Int64())
	s.Equal(int64(150), s.balance(bob))

	_, err = s.token.TransferFrom(s.ctx, s.sender, bob, big.NewInt(51))
	var failed *chain.TxFailedError
	s.ErrorAs(err, &failed)
}

func (s *TokenTestSuite) TestBurn() {
	s.mint(s.sender, 100)

	_, err := s.token.Burn(s.ctx, big.NewInt(40))
	s.Require().NoError(err)
	s.Equal(int64(60), s.balance(s.sender))

	_, err = s.token.Burn(s.ctx, big.NewInt(61))
	var failed *chain.TxFailedError
	s.ErrorAs(err, &failed)
}

func (s *TokenTestSuite) TestFilterEvents() {
	s.mint(s.sender, 1000)

	_, err := s.token.Transfer(s.ctx, alice, big.NewInt(10))
	s.Require().NoError(err)
	_, err = s.token.Transfer(s.ctx, bob, big.NewInt(20))
	s.Require().NoError(err)
	_, err = s.token.Approve(s.ctx, alice, big.NewInt(5))
	s.Require().NoError(err)

	toBob, err := s.token.FilterTransfer(s.ctx, Range{}, []common.Address{s.sender}, []common.Address{bob})
	s.Require().NoError(err)
	s.Require().Len(toBob, 1)
	s.Equal(int64(20), toBob[0].Value.Int64())

	fromSender, err := s.token.FilterTransfer(s.ctx, Range{}, []common.Address{s.sender}, nil)
	s.Require().NoError(err)
	s.Len(fromSender, 2)

	approvals, err := s.token.FilterApproval(s.ctx, Range{}, nil, nil)
	s.Require().NoError(err)
	s.Require().Len(approvals, 1)
	s.Equal(s.sender, approvals[0].Owner)
	s.Equal(alice, approvals[0].Spender)
	s.Equal(int64(5), approvals[0].Value.Int64())

	parsed, err := s.token.ParseApproval(approvals[0].Raw)
	s.Require().NoError(err)
	s.Equal(approvals[0].Value, parsed.Value)

	_, err = s.token.ParseTransfer(approvals[0].Raw)
	s.Error(err)
}

func (s *TokenTestSuite) TestFilterRangeExcludesEarlierBlocks() {
	s.mint(s.sender, 100)
	receipt, err := s.token.Transfer(s.ctx, alice, big.NewInt(1))
	s.Require().NoError(err)

	_, err = s.token.Transfer(s.ctx, alice, big.NewInt(2))
	s.Require().NoError(err)

	from := receipt.BlockNumber.Uint64() + 1
	later, err := s.token.FilterTransfer(s.ctx, Range{From: from}, nil, []common.Address{alice})
	s.Require().NoError(err)
	s.Require().Len(later, 1)
	s.Equal(int64(2), later[0].Value.Int64())
}

func TestBalanceOf_NoCode(t *testing.T) {
	c := chaintest.New(t)

	token, err := Bind(common.HexToAddress("0x1234567890123456789012345678901234567890"), c.Provider)
	require.NoError(t, err)

	_, err = token.BalanceOf(context.Background(), alice)
	assert.ErrorIs(t, err, bind.ErrNoCode)
}

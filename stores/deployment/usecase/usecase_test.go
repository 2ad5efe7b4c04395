package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/xionmarket/base/ctx"
	bValidator "github.com/x-xyz/xionmarket/base/validator"
	"github.com/x-xyz/xionmarket/domain"
	"github.com/x-xyz/xionmarket/domain/cw721"
	"github.com/x-xyz/xionmarket/domain/deployment"
	deploymentMocks "github.com/x-xyz/xionmarket/domain/deployment/mocks"
	"github.com/x-xyz/xionmarket/domain/mocks"
)

var (
	mockCtx = bCtx.Background()
	now     = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
)

const (
	deployer    = domain.Address("xion1zyg3zyg3zyg3zyg3zyg3zyg3zyg3zyg3r5dqyy")
	admin       = domain.Address("xion1yg3zyg3zyg3zyg3zyg3zyg3zyg3zyg3zvfgxvn")
	marketplace = domain.Address("xion1qqqsyqcyq5rqwzqfpg9scrgwpugpzysnzs23v9ccrydpk8qarc0sugmyf4")
	nftContract = domain.Address("xion1ehxumnwdehxumnwdehxumnwdehxumnwdehxumnwdehxumnwdehxspy5c04")
)

type deploymentSuite struct {
	suite.Suite
	deployer *mocks.Deployer
	repo     *deploymentMocks.Repo
	uc       deployment.UseCase
}

func (s *deploymentSuite) SetupTest() {
	s.deployer = &mocks.Deployer{}
	s.repo = &deploymentMocks.Repo{}
	uc := NewDeploymentUseCase(&DeploymentUseCaseCfg{
		Deployer:  s.deployer,
		Repo:      s.repo,
		Validator: bValidator.New(),
		Network:   "testnet",
	})
	uc.(*impl).timeNow = func() time.Time { return now }
	s.uc = uc
}

func (s *deploymentSuite) TearDownTest() {
	s.deployer.AssertExpectations(s.T())
	s.repo.AssertExpectations(s.T())
}

func (s *deploymentSuite) TestDeployMarketplace() {
	wasm := []byte{0x00, 0x61, 0x73, 0x6d}
	s.deployer.On("Sender", mock.Anything).Return(deployer, nil).Once()
	s.deployer.On("Upload", mock.Anything, wasm).Return(domain.CodeId(42), &domain.TxResult{TxHash: "UPLOAD"}, nil).Once()
	s.deployer.On("Instantiate", mock.Anything, domain.CodeId(42), "xion-marketplace", deployer, deployment.MarketplaceInstantiateMsg{
		Admin:         deployer,
		Denom:         "uxion",
		FeePercentage: 2,
	}).Return(marketplace, &domain.TxResult{TxHash: "INIT"}, nil).Once()

	want := &deployment.Deployment{
		Network:         "testnet",
		ContractType:    deployment.ContractMarketplace,
		CodeId:          42,
		ContractAddress: marketplace,
		Admin:           deployer,
		Denom:           "uxion",
		FeePercentage:   2,
		Deployer:        deployer,
		TxHashes:        deployment.TxHashes{Upload: "UPLOAD", Instantiate: "INIT"},
		DeployedAt:      now,
	}
	s.repo.On("Upsert", mock.Anything, want).Return(nil).Once()

	d, err := s.uc.DeployMarketplace(mockCtx, deployment.MarketplaceParams{
		Wasm:          wasm,
		Label:         "xion-marketplace",
		FeePercentage: 2,
	})
	s.Require().NoError(err)
	s.Equal(want, d)
}

func (s *deploymentSuite) TestDeployMarketplaceStoredCode() {
	s.deployer.On("Sender", mock.Anything).Return(deployer, nil).Once()
	s.deployer.On("Instantiate", mock.Anything, domain.CodeId(7), "market", admin, deployment.MarketplaceInstantiateMsg{
		Admin:         admin,
		Denom:         "uxion",
		FeePercentage: 5,
	}).Return(marketplace, &domain.TxResult{TxHash: "INIT"}, nil).Once()
	s.repo.On("Upsert", mock.Anything, mock.Anything).Return(nil).Once()

	d, err := s.uc.DeployMarketplace(mockCtx, deployment.MarketplaceParams{
		CodeId:        7,
		Label:         "market",
		Admin:         admin,
		FeePercentage: 5,
	})
	s.Require().NoError(err)
	s.Empty(d.TxHashes.Upload)
	s.Equal(admin, d.Admin)
	s.Equal(deployer, d.Deployer)
}

func (s *deploymentSuite) TestDeployMarketplaceInvalid() {
	_, err := s.uc.DeployMarketplace(mockCtx, deployment.MarketplaceParams{Label: "no code"})
	s.ErrorIs(err, domain.ErrInvalidInput)

	_, err = s.uc.DeployMarketplace(mockCtx, deployment.MarketplaceParams{CodeId: 1, Label: "fee", FeePercentage: 101})
	s.ErrorIs(err, domain.ErrInvalidInput)
}

func (s *deploymentSuite) TestDeployCw721() {
	wasm := []byte{0x00, 0x61, 0x73, 0x6d}
	s.deployer.On("Sender", mock.Anything).Return(deployer, nil).Once()
	s.deployer.On("Upload", mock.Anything, wasm).Return(domain.CodeId(9), &domain.TxResult{TxHash: "UPLOAD"}, nil).Once()
	s.deployer.On("Instantiate", mock.Anything, domain.CodeId(9), "collection", deployer, cw721.InstantiateMsg{
		Name:   "Xion Cats",
		Symbol: "XCAT",
		Minter: deployer,
	}).Return(nftContract, &domain.TxResult{TxHash: "INIT"}, nil).Once()
	s.repo.On("Upsert", mock.Anything, mock.Anything).Return(nil).Once()

	d, err := s.uc.DeployCw721(mockCtx, deployment.Cw721Params{
		Wasm:   wasm,
		Label:  "collection",
		Name:   "Xion Cats",
		Symbol: "XCAT",
	})
	s.Require().NoError(err)
	s.Equal(deployment.ContractCw721, d.ContractType)
	s.Equal(nftContract, d.ContractAddress)
}

func (s *deploymentSuite) TestUploadFailed() {
	s.deployer.On("Sender", mock.Anything).Return(deployer, nil).Once()
	s.deployer.On("Upload", mock.Anything, mock.Anything).
		Return(domain.CodeId(0), nil, domain.ClassifyContractError("insufficient funds: 10uxion < 500uxion")).Once()

	_, err := s.uc.DeployCw721(mockCtx, deployment.Cw721Params{
		Wasm:   []byte{1},
		Label:  "collection",
		Name:   "n",
		Symbol: "s",
	})
	s.ErrorIs(err, domain.ErrInsufficientFunds)

	stepErr := &domain.StepError{}
	s.Require().ErrorAs(err, &stepErr)
	s.Equal(domain.StepUpload, stepErr.Step)
	s.Equal("The deployer needs XION to pay for gas", stepErr.Guidance)
}

func (s *deploymentSuite) TestSaveFailedKeepsDeployment() {
	s.deployer.On("Sender", mock.Anything).Return(deployer, nil).Once()
	s.deployer.On("Instantiate", mock.Anything, domain.CodeId(7), "market", deployer, mock.Anything).
		Return(marketplace, &domain.TxResult{TxHash: "INIT"}, nil).Once()
	s.repo.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("mongo down")).Once()

	d, err := s.uc.DeployMarketplace(mockCtx, deployment.MarketplaceParams{CodeId: 7, Label: "market"})
	s.Error(err)
	s.Require().NotNil(d)
	s.Equal(marketplace, d.ContractAddress)

	stepErr := &domain.StepError{}
	s.Require().ErrorAs(err, &stepErr)
	s.Equal(domain.StepSave, stepErr.Step)
}

func (s *deploymentSuite) TestLatest() {
	d := &deployment.Deployment{Network: "testnet", ContractType: deployment.ContractMarketplace, ContractAddress: marketplace}
	s.repo.On("FindLatest", mock.Anything, "testnet", deployment.ContractMarketplace).Return(d, nil).Once()
	s.repo.On("FindLatest", mock.Anything, "testnet", deployment.ContractCw721).Return(nil, nil).Once()

	got, err := s.uc.Latest(mockCtx, deployment.ContractMarketplace)
	s.Require().NoError(err)
	s.Equal(d, got)

	_, err = s.uc.Latest(mockCtx, deployment.ContractCw721)
	s.ErrorIs(err, domain.ErrNotFound)
}

func TestDeploymentSuite(t *testing.T) {
	suite.Run(t, new(deploymentSuite))
}

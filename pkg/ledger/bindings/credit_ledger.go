// Package bindings holds the Go binding for the credit ledger contract.
package bindings

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// CreditLedgerMetaData contains all meta data concerning the CreditLedger contract.
var CreditLedgerMetaData = &bind.MetaData{
	ABI: "[{\"type\":\"function\",\"name\":\"getBalance\",\"inputs\":[{\"name\":\"identifier\",\"type\":\"bytes32\",\"internalType\":\"bytes32\"}],\"outputs\":[{\"name\":\"\",\"type\":\"uint256\",\"internalType\":\"uint256\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"topup\",\"inputs\":[{\"name\":\"identifier\",\"type\":\"bytes32\",\"internalType\":\"bytes32\"}],\"outputs\":[],\"stateMutability\":\"payable\"},{\"type\":\"function\",\"name\":\"createIdentifier\",\"inputs\":[],\"outputs\":[{\"name\":\"\",\"type\":\"bytes32\",\"internalType\":\"bytes32\"}],\"stateMutability\":\"nonpayable\"},{\"type\":\"function\",\"name\":\"getUserIdentifierCount\",\"inputs\":[{\"name\":\"user\",\"type\":\"address\",\"internalType\":\"address\"}],\"outputs\":[{\"name\":\"\",\"type\":\"uint256\",\"internalType\":\"uint256\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"getUserIdentifierAt\",\"inputs\":[{\"name\":\"user\",\"type\":\"address\",\"internalType\":\"address\"},{\"name\":\"index\",\"type\":\"uint256\",\"internalType\":\"uint256\"}],\"outputs\":[{\"name\":\"\",\"type\":\"bytes32\",\"internalType\":\"bytes32\"}],\"stateMutability\":\"view\"},{\"type\":\"function\",\"name\":\"getIdentifierOwner\",\"inputs\":[{\"name\":\"identifier\",\"type\":\"bytes32\",\"internalType\":\"bytes32\"}],\"outputs\":[{\"name\":\"\",\"type\":\"address\",\"internalType\":\"address\"}],\"stateMutability\":\"view\"},{\"type\":\"event\",\"name\":\"IdentifierCreated\",\"inputs\":[{\"name\":\"identifier\",\"type\":\"bytes32\",\"indexed\":true,\"internalType\":\"bytes32\"},{\"name\":\"owner\",\"type\":\"address\",\"indexed\":true,\"internalType\":\"address\"}],\"anonymous\":false},{\"type\":\"event\",\"name\":\"CreditsToppedUp\",\"inputs\":[{\"name\":\"identifier\",\"type\":\"bytes32\",\"indexed\":true,\"internalType\":\"bytes32\"},{\"name\":\"amount\",\"type\":\"uint256\",\"indexed\":false,\"internalType\":\"uint256\"}],\"anonymous\":false}]",
}

// CreditLedger is a Go binding around the credit ledger contract.
type CreditLedger struct {
	CreditLedgerCaller     // Read-only binding to the contract
	CreditLedgerTransactor // Write-only binding to the contract
	CreditLedgerFilterer   // Log filterer for contract events
}

// CreditLedgerCaller is a read-only Go binding around the contract.
type CreditLedgerCaller struct {
	contract *bind.BoundContract // Generic contract wrapper for the low level calls
}

// CreditLedgerTransactor is a write-only Go binding around the contract.
type CreditLedgerTransactor struct {
	contract *bind.BoundContract // Generic contract wrapper for the low level calls
}

// CreditLedgerFilterer decodes contract events.
type CreditLedgerFilterer struct {
	contract *bind.BoundContract // Generic contract wrapper for the low level calls
}

// NewCreditLedger creates a new instance of CreditLedger, bound to a specific deployed contract.
func NewCreditLedger(address common.Address, backend bind.ContractBackend) (*CreditLedger, error) {
	contract, err := bindCreditLedger(address, backend, backend, backend)
	if err != nil {
		return nil, err
	}
	return &CreditLedger{
		CreditLedgerCaller:     CreditLedgerCaller{contract: contract},
		CreditLedgerTransactor: CreditLedgerTransactor{contract: contract},
		CreditLedgerFilterer:   CreditLedgerFilterer{contract: contract},
	}, nil
}

// NewCreditLedgerFilterer creates a log decoder. The filterer backend may be
// nil when only Parse* methods are used.
func NewCreditLedgerFilterer(address common.Address, filterer bind.ContractFilterer) (*CreditLedgerFilterer, error) {
	contract, err := bindCreditLedger(address, nil, nil, filterer)
	if err != nil {
		return nil, err
	}
	return &CreditLedgerFilterer{contract: contract}, nil
}

func bindCreditLedger(address common.Address, caller bind.ContractCaller, transactor bind.ContractTransactor, filterer bind.ContractFilterer) (*bind.BoundContract, error) {
	parsed, err := CreditLedgerMetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	return bind.NewBoundContract(address, *parsed, caller, transactor, filterer), nil
}

// GetBalance is a free data retrieval call binding the contract method.
//
// Solidity: function getBalance(bytes32 identifier) view returns(uint256)
func (_CreditLedger *CreditLedgerCaller) GetBalance(opts *bind.CallOpts, identifier [32]byte) (*big.Int, error) {
	var out []interface{}
	err := _CreditLedger.contract.Call(opts, &out, "getBalance", identifier)
	if err != nil {
		return *new(*big.Int), err
	}
	return *abiConvert[*big.Int](out[0]), nil
}

// GetUserIdentifierCount is a free data retrieval call binding the contract method.
//
// Solidity: function getUserIdentifierCount(address user) view returns(uint256)
func (_CreditLedger *CreditLedgerCaller) GetUserIdentifierCount(opts *bind.CallOpts, user common.Address) (*big.Int, error) {
	var out []interface{}
	err := _CreditLedger.contract.Call(opts, &out, "getUserIdentifierCount", user)
	if err != nil {
		return *new(*big.Int), err
	}
	return *abiConvert[*big.Int](out[0]), nil
}

// GetUserIdentifierAt is a free data retrieval call binding the contract method.
//
// Solidity: function getUserIdentifierAt(address user, uint256 index) view returns(bytes32)
func (_CreditLedger *CreditLedgerCaller) GetUserIdentifierAt(opts *bind.CallOpts, user common.Address, index *big.Int) ([32]byte, error) {
	var out []interface{}
	err := _CreditLedger.contract.Call(opts, &out, "getUserIdentifierAt", user, index)
	if err != nil {
		return *new([32]byte), err
	}
	return *abiConvert[[32]byte](out[0]), nil
}

// GetIdentifierOwner is a free data retrieval call binding the contract method.
//
// Solidity: function getIdentifierOwner(bytes32 identifier) view returns(address)
func (_CreditLedger *CreditLedgerCaller) GetIdentifierOwner(opts *bind.CallOpts, identifier [32]byte) (common.Address, error) {
	var out []interface{}
	err := _CreditLedger.contract.Call(opts, &out, "getIdentifierOwner", identifier)
	if err != nil {
		return *new(common.Address), err
	}
	return *abiConvert[common.Address](out[0]), nil
}

// Topup is a paid mutator transaction binding the contract method.
//
// Solidity: function topup(bytes32 identifier) payable returns()
func (_CreditLedger *CreditLedgerTransactor) Topup(opts *bind.TransactOpts, identifier [32]byte) (*types.Transaction, error) {
	return _CreditLedger.contract.Transact(opts, "topup", identifier)
}

// CreateIdentifier is a paid mutator transaction binding the contract method.
//
// Solidity: function createIdentifier() returns(bytes32)
func (_CreditLedger *CreditLedgerTransactor) CreateIdentifier(opts *bind.TransactOpts) (*types.Transaction, error) {
	return _CreditLedger.contract.Transact(opts, "createIdentifier")
}

// CreditLedgerIdentifierCreated represents an IdentifierCreated event raised by the contract.
type CreditLedgerIdentifierCreated struct {
	Identifier [32]byte
	Owner      common.Address
	Raw        types.Log // Blockchain specific contextual infos
}

// ParseIdentifierCreated is a log parse operation binding the contract event.
//
// Solidity: event IdentifierCreated(bytes32 indexed identifier, address indexed owner)
func (_CreditLedger *CreditLedgerFilterer) ParseIdentifierCreated(log types.Log) (*CreditLedgerIdentifierCreated, error) {
	event := new(CreditLedgerIdentifierCreated)
	if err := _CreditLedger.contract.UnpackLog(event, "IdentifierCreated", log); err != nil {
		return nil, err
	}
	event.Raw = log
	return event, nil
}

// CreditLedgerCreditsToppedUp represents a CreditsToppedUp event raised by the contract.
type CreditLedgerCreditsToppedUp struct {
	Identifier [32]byte
	Amount     *big.Int
	Raw        types.Log // Blockchain specific contextual infos
}

// ParseCreditsToppedUp is a log parse operation binding the contract event.
//
// Solidity: event CreditsToppedUp(bytes32 indexed identifier, uint256 amount)
func (_CreditLedger *CreditLedgerFilterer) ParseCreditsToppedUp(log types.Log) (*CreditLedgerCreditsToppedUp, error) {
	event := new(CreditLedgerCreditsToppedUp)
	if err := _CreditLedger.contract.UnpackLog(event, "CreditsToppedUp", log); err != nil {
		return nil, err
	}
	event.Raw = log
	return event, nil
}

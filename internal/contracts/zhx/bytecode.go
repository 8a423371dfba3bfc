package zhx

// Bin is the creation bytecode of the ZHX token (solc 0.8.19).
const Bin = "0x60806040523480156200001157600080fd5b506040805180820190915260088152672d242c2a37b5b2b760c11b602082015260009062000040908262000128565b506040805180820190915260038152620b490b60eb1b60208201526001906200006a908262000128565b506002805460ff191660121790556000600355620001f4565b634e487b7160e01b600052604160045260246000fd5b600181811c90821680620000ae57607f821691505b602082108103620000cf57634e487b7160e01b600052602260045260246000fd5b50919050565b601f8211156200012357600081815260208120601f850160051c81016020861015620000fe5750805b601f850160051c820191505b818110156200011f578281556001016200010a565b5050505b505050565b81516001600160401b0381111562000144576200014462000083565b6200015c8162000155845462000099565b84620000d5565b602080601f8311600181146200019457600084156200017b5750858301515b600019600386901b1c1916600185901b1785556200011f565b600085815260208120601f198616915b82811015620001c557888601518255948401946001909101908401620001a4565b5085821015620001e45787850151600019600388901b60f8161c191681555b5050505050600190811b01905550565b610a8d80620002046000396000f3fe608060405234801561001057600080fd5b50600436106100a95760003560e01c806340c10f191161007157806340c10f191461012957806342966c681461013e57806370a082311461015157806395d89b411461017a578063a9059cbb14610182578063dd62ed3e1461019557600080fd5b806306fdde03146100ae578063095ea7b3146100cc57806318160ddd146100ef57806323b872dd14610101578063313ce56714610114575b600080fd5b6100b66101ce565b6040516100c39190610883565b60405180910390f35b6100df6100da3660046108ed565b610260565b60405190151581526020016100c3565b6003545b6040519081526020016100c3565b6100df61010f366004610917565b610323565b60025460405160ff90911681526020016100c3565b61013c6101373660046108ed565b610523565b005b61013c61014c366004610953565b610637565b6100f361015f36600461096c565b6001600160a01b031660009081526004602052604090205490565b6100b661074a565b6100df6101903660046108ed565b610759565b6100f36101a336600461098e565b6001600160a01b03918216600090815260056020908152604080832093909416825291909152205490565b6060600080546101dd906109c1565b80601f0160208091040260200160405190810160405280929190818152602001828054610209906109c1565b80156102565780601f1061022b57610100808354040283529160200191610256565b820191906000526020600020905b81548152906001019060200180831161023957829003601f168201915b5050505050905090565b60006001600160a01b0383166102bd5760405162461bcd60e51b815260206004820152601760248201527f417070726f766520746f207a65726f206164647265737300000000000000000060448201526064015b60405180910390fd5b3360008181526005602090815260408083206001600160a01b03881680855290835292819020869055518581529192917f8c5be1e5ebec7d5bd14f71427d1e84f3dd0314c0f7b2291e5b200ac8c7c3b92591015b60405180910390a35060015b92915050565b60006001600160a01b0384161580159061034557506001600160a01b03831615155b6103835760405162461bcd60e51b815260206004820152600f60248201526e496e76616c6964206164647265737360881b60448201526064016102b4565b6001600160a01b0384166000908152600460205260409020548211156103e25760405162461bcd60e51b8152602060048201526014602482015273496e73756666696369656e742062616c616e636560601b60448201526064016102b4565b6001600160a01b038416600090815260056020908152604080832033845290915290205482111561044a5760405162461bcd60e51b8152602060048201526012602482015271105b1b1bddd85b98d948195e18d95959195960721b60448201526064016102b4565b6001600160a01b03841660009081526005602090815260408083203384529091528120805484929061047d908490610a11565b90915550506001600160a01b038416600090815260046020526040812080548492906104aa908490610a11565b90915550506001600160a01b038316600090815260046020526040812080548492906104d7908490610a24565b92505081905550826001600160a01b0316846001600160a01b0316600080516020610a388339815191528460405161051191815260200190565b60405180910390a35060019392505050565b6001600160a01b0382166105705760405162461bcd60e51b81526020600482015260146024820152734d696e7420746f207a65726f206164647265737360601b60448201526064016102b4565b600081116105c05760405162461bcd60e51b815260206004820152601c60248201527f4d696e7420616d6f756e74206d75737420626520706f7369746976650000000060448201526064016102b4565b80600360008282546105d29190610a24565b90915550506001600160a01b038216600090815260046020526040812080548392906105ff908490610a24565b90915550506040518181526001600160a01b03831690600090600080516020610a388339815191529060200160405180910390a35050565b336000908152600460205260409020548111156106965760405162461bcd60e51b815260206004820152601c60248201527f496e73756666696369656e742062616c616e636520746f206275726e0000000060448201526064016102b4565b600081116106e65760405162461bcd60e51b815260206004820152601c60248201527f4275726e20616d6f756e74206d75737420626520706f7369746976650000000060448201526064016102b4565b80600360008282546106f89190610a11565b9091555050336000908152600460205260408120805483929061071c908490610a11565b90915550506040518181526000903390600080516020610a388339815191529060200160405180910390a350565b6060600180546101dd906109c1565b60006001600160a01b0383166107b15760405162461bcd60e51b815260206004820152601860248201527f5472616e7366657220746f207a65726f2061646472657373000000000000000060448201526064016102b4565b336000908152600460205260409020548211156108075760405162461bcd60e51b8152602060048201526014602482015273496e73756666696369656e742062616c616e636560601b60448201526064016102b4565b3360009081526004602052604081208054849290610826908490610a11565b90915550506001600160a01b03831660009081526004602052604081208054849290610853908490610a24565b90915550506040518281526001600160a01b038416903390600080516020610a3883398151915290602001610311565b600060208083528351808285015260005b818110156108b057858101830151858201604001528201610894565b506000604082860101526040601f19601f8301168501019250505092915050565b80356001600160a01b03811681146108e857600080fd5b919050565b6000806040838503121561090057600080fd5b610909836108d1565b946020939093013593505050565b60008060006060848603121561092c57600080fd5b610935846108d1565b9250610943602085016108d1565b9150604084013590509250925092565b60006020828403121561096557600080fd5b5035919050565b60006020828403121561097e57600080fd5b610987826108d1565b9392505050565b600080604083850312156109a157600080fd5b6109aa836108d1565b91506109b8602084016108d1565b90509250929050565b600181811c908216806109d557607f821691505b6020821081036109f557634e487b7160e01b600052602260045260246000fd5b50919050565b634e487b7160e01b600052601160045260246000fd5b8181038181111561031d5761031d6109fb565b8082018082111561031d5761031d6109fb56feddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3efa2646970667358221220ba75adb3c7b640c569f0a8bc84d44f3d3ad2c9dc03e2ae8f1c81b8914b170ee164736f6c63430008130033"

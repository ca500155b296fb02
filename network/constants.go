// SPDX-License-Identifier: MIT

package network

// Layout names accepted by Make.
const (
	LayoutSequential = "sequ"
	LayoutSpin       = "spin"
	LayoutCartan     = "cart"
	LayoutCyclicSpin = "cyclic_spin"
	LayoutCyclicLine = "cyclic_line"
	LayoutRandom     = "random"
)

// Connectivity names accepted by Make and Connectivity.
const (
	ConnectivityFull = "full"
	ConnectivityLine = "line"
	ConnectivityStar = "star"
)

// layoutAliases maps long-form names onto canonical layout names.
var layoutAliases = map[string]string{
	"sequential": LayoutSequential,
	"cartan":     LayoutCartan,
}

// Method tags prefix errors with the operation name.
const (
	methodMake         = "Make"
	methodRandom       = "Random"
	methodConnectivity = "Connectivity"
	methodValidate     = "Validate"
	methodNew          = "New"
)

// minCartanQubits is the base case of the Cartan recursion.
const minCartanQubits = 3

// minPairQubits is the smallest register that has a qubit pair.
const minPairQubits = 2

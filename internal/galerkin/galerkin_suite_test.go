package galerkin_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestGalerkinSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Galerkin Suite")
}

package simmeta_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestSimmeta(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Simmeta Suite")
}

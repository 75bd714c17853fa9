package distfit_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestDistfit(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Distfit Suite")
}

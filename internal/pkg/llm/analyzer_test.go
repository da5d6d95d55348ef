package llm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/shazam37/ai-underwriting/internal/pkg/llm"
)

var _ = Describe("ParseVerdict", func() {
	It("accepts the exact token", func() {
		Expect(llm.ParseVerdict("True")).To(BeTrue())
	})

	It("tolerates surrounding whitespace", func() {
		Expect(llm.ParseVerdict(" True\n")).To(BeTrue())
	})

	It("rejects everything else", func() {
		Expect(llm.ParseVerdict("true")).To(BeFalse())
		Expect(llm.ParseVerdict("TRUE")).To(BeFalse())
		Expect(llm.ParseVerdict("False")).To(BeFalse())
		Expect(llm.ParseVerdict("The document is True")).To(BeFalse())
		Expect(llm.ParseVerdict("")).To(BeFalse())
	})
})

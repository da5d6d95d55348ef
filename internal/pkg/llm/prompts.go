package llm

import "fmt"

const (
	verificationSystem = `You are a strict document classification system for a lending workflow.
		You will receive the contents of exactly one uploaded document, either as text or as an image.
		Decide whether the document really is of the type the uploader claims.
		Answer with exactly one word: True or False. No punctuation, no explanation.`

	extractionTextPrompt = `You are an expert character recognition system. You will receive a Driving License / Social Security Number as text.
		Your job is to only extract the License or Social Security number from it. You will only return the number as output. There should be no spaces, dashes, or commas in the output.

		Here is the document content:
		`

	extractionImagePrompt = `You are an expert OCR system. You will receive Driving License / Social Security Number details as an image.
		Your job is to only extract the License or Social Security number from it. You will only return the number as output. There should be no spaces, dashes, or commas in the output.

		Here is the image:`
)

// Type-defining features the classifier must check for, plus the sibling
// type it must not be confused with.
var documentTraits = map[string]struct {
	features string
	sibling  string
}{
	"driving_license": {
		features: "a license number, the holder's name, date of birth, address, issue and expiration dates, and sex",
		sibling:  "a Social Security card or SSN record",
	},
	"ssn": {
		features: "a nine digit Social Security number and the holder's name",
		sibling:  "a driving license",
	},
	"bank_application": {
		features: "applicant details, a requested loan or account product, declared income, and signature or consent sections",
		sibling:  "a bank statement",
	},
	"bank_statement": {
		features: "an account number, a statement period, and a list of transactions with running balances",
		sibling:  "a bank application",
	},
}

func buildVerificationPrompt(declaredType string) string {
	traits, ok := documentTraits[declaredType]
	if !ok {
		return fmt.Sprintf(`The uploader claims this document is of type %q.
		Check whether the content matches that claim.
		Respond with exactly True or False.`, declaredType)
	}

	return fmt.Sprintf(`The uploader claims this document is a %s.
		Check for type-defining features: %s.
		Do not confuse it with %s - if the document looks like that instead, it does not match.
		Respond with exactly True if the document is a %s, and exactly False otherwise.`,
		declaredType, traits.features, traits.sibling, declaredType)
}

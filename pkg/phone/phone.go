package phone

import "github.com/nyaruka/phonenumbers"

// DefaultRegion is used when a number carries no country prefix.
const DefaultRegion = "PA"

// NormalizeE164 parses a raw phone number and returns it in E.164
// format. The second return value reports whether the number parsed
// as valid; callers keep the raw input when it does not.
func NormalizeE164(raw, region string) (string, bool) {
	if region == "" {
		region = DefaultRegion
	}
	num, err := phonenumbers.Parse(raw, region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return "", false
	}
	return phonenumbers.Format(num, phonenumbers.E164), true
}

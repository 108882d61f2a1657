package command

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-portfolio/pkg/types"
	"golang.org/x/text/unicode/norm"
)

const (
	slugMinLength = 3
	slugMaxLength = 64
	fieldSlug     = "slug"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var reservedSlugs = map[string]struct{}{
	"admin": {}, "api": {}, "app": {}, "edit": {}, "login": {},
	"logout": {}, "new": {}, "p": {}, "settings": {}, "static": {},
}

// ValidateSlug checks a normalised slug: lower-case words of letters and
// digits joined by single hyphens.
func ValidateSlug(slug string) error {
	err := validation.Validate(slug,
		validation.Required.Error("is required"),
		validation.RuneLength(slugMinLength, slugMaxLength).Error("must be between 3 and 64 characters"),
		validation.Match(slugPattern).Error("may only contain lower-case letters, digits and single hyphens"),
		validation.By(notReserved),
	)
	if err != nil {
		return types.NewValidationError(fieldSlug, err.Error())
	}
	return nil
}

func notReserved(value any) error {
	slug, _ := value.(string)
	if _, ok := reservedSlugs[slug]; ok {
		return validation.NewError("validation_slug_reserved", "is reserved")
	}
	return nil
}

// Slugify derives a slug candidate from free text such as a contact name.
func Slugify(text string) string {
	var b strings.Builder
	hyphen := false
	for _, r := range norm.NFKD.String(strings.ToLower(text)) {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			hyphen = false
		default:
			if b.Len() > 0 && !hyphen {
				b.WriteByte('-')
				hyphen = true
			}
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if len(slug) > slugMaxLength {
		slug = strings.TrimSuffix(slug[:slugMaxLength], "-")
	}
	return slug
}

func withSuffix(base string, n int) string {
	suffix := "-" + strconv.Itoa(n)
	if len(base)+len(suffix) > slugMaxLength {
		base = strings.TrimSuffix(base[:slugMaxLength-len(suffix)], "-")
	}
	return base + suffix
}

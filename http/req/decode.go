package req

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
	"github.com/replykit/reply"
)

// A queryParamDecoder wraps a *schema.Decoder,
// translating its errors into reply sentinel errors.
type queryParamDecoder struct {
	dec *schema.Decoder
}

func newQueryParamDecoder() queryParamDecoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return queryParamDecoder{dec}
}

// decode maps params onto the fields of structPtr according to "schema" struct tags.
func (d queryParamDecoder) decode(structPtr any, params url.Values) error {
	err := d.dec.Decode(structPtr, params)
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), "schema: interface must be a pointer") {
		return fmt.Errorf("%w: decode called with non-pointer: %s", reply.ErrBadAny, err)
	}

	return translateDecoderError(err)
}

// translateDecoderError converts an error returned by *schema.Decoder into standardized errors.
// Some *schema.Decoder errors are issues with calling code;
// some errors are unexpected issues;
// still some are issues with mismatches between a request's query params and the expected shape.
func translateDecoderError(err error) error {
	var pkgErrs schema.MultiError
	// Outside the errors handled above, schema wraps everything in a MultiError.
	if !errors.As(err, &pkgErrs) {
		return fmt.Errorf("%w: %s", reply.ErrBadFormat, err)
	}

	var validErrs ValidationErrors
	for _, pkgErr := range pkgErrs {
		switch err := pkgErr.(type) {
		case schema.ConversionError:
			ve := ValidationError{
				Field: err.Key,
				// For non-slice values, err.Index is -1.
				Got:  fmt.Sprintf("bad value at index %d", max(0, err.Index)),
				Rule: "must be " + err.Type.String(),
			}

			validErrs = append(validErrs, ve)

		case schema.EmptyFieldError:
			return fmt.Errorf(`%w: use "validate" tags to set required fields, not schema`, reply.ErrNotImplemented)

		case schema.UnknownKeyError:
			// Unknown keys are accepted by the default decoder configuration,
			// so this only surfaces if that configuration changes.
			ve := ValidationError{
				Field: err.Key,
				Got:   "value is set",
				Rule:  "unexpected key should not be set",
			}

			validErrs = append(validErrs, ve)

		default:
			// A field without a registered schema.Converter only errors
			// once a url.Values actually sets a value for it.
			if strings.Contains(err.Error(), "schema: converter not found for") {
				return fmt.Errorf("%w: cannot convert values into unsupported type", reply.ErrNotImplemented)
			}

			// The above covers all the known struct-backed errors schema returns.
			// Anything else is likely a programming error, so surface it immediately.
			return fmt.Errorf("%w: %s", reply.ErrUnexpected, err)
		}
	}

	return validErrs
}

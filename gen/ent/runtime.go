// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/biasharaledger/docextract/db/ent/schema"
	"github.com/biasharaledger/docextract/gen/ent/company"
	"github.com/biasharaledger/docextract/gen/ent/document"
	"github.com/biasharaledger/docextract/gen/ent/extracteddata"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	companyFields := schema.Company{}.Fields()
	_ = companyFields
	// companyDescName is the schema descriptor for name field.
	companyDescName := companyFields[1].Descriptor()
	// company.NameValidator is a validator for the "name" field. It is called by the builders before save.
	company.NameValidator = companyDescName.Validators[0].(func(string) error)
	// companyDescCreatedAt is the schema descriptor for created_at field.
	companyDescCreatedAt := companyFields[2].Descriptor()
	// company.DefaultCreatedAt holds the default value on creation for the created_at field.
	company.DefaultCreatedAt = companyDescCreatedAt.Default.(func() time.Time)
	// companyDescUpdatedAt is the schema descriptor for updated_at field.
	companyDescUpdatedAt := companyFields[3].Descriptor()
	// company.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	company.DefaultUpdatedAt = companyDescUpdatedAt.Default.(func() time.Time)
	// company.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	company.UpdateDefaultUpdatedAt = companyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// companyDescID is the schema descriptor for id field.
	companyDescID := companyFields[0].Descriptor()
	// company.DefaultID holds the default value on creation for the id field.
	company.DefaultID = companyDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescSourceFormat is the schema descriptor for source_format field.
	documentDescSourceFormat := documentFields[3].Descriptor()
	// document.SourceFormatValidator is a validator for the "source_format" field. It is called by the builders before save.
	document.SourceFormatValidator = func() func(string) error {
		validators := documentDescSourceFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(source_format string) error {
			for _, fn := range fns {
				if err := fn(source_format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[4].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescAttemptCount is the schema descriptor for attempt_count field.
	documentDescAttemptCount := documentFields[6].Descriptor()
	// document.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	document.DefaultAttemptCount = documentDescAttemptCount.Default.(int)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[9].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	extracteddataFields := schema.ExtractedData{}.Fields()
	_ = extracteddataFields
	// extracteddataDescTransactionType is the schema descriptor for transaction_type field.
	extracteddataDescTransactionType := extracteddataFields[9].Descriptor()
	// extracteddata.DefaultTransactionType holds the default value on creation for the transaction_type field.
	extracteddata.DefaultTransactionType = extracteddataDescTransactionType.Default.(string)
	// extracteddata.TransactionTypeValidator is a validator for the "transaction_type" field. It is called by the builders before save.
	extracteddata.TransactionTypeValidator = extracteddataDescTransactionType.Validators[0].(func(string) error)
	// extracteddataDescCategory is the schema descriptor for category field.
	extracteddataDescCategory := extracteddataFields[10].Descriptor()
	// extracteddata.DefaultCategory holds the default value on creation for the category field.
	extracteddata.DefaultCategory = extracteddataDescCategory.Default.(string)
	// extracteddataDescPaymentMethod is the schema descriptor for payment_method field.
	extracteddataDescPaymentMethod := extracteddataFields[12].Descriptor()
	// extracteddata.DefaultPaymentMethod holds the default value on creation for the payment_method field.
	extracteddata.DefaultPaymentMethod = extracteddataDescPaymentMethod.Default.(string)
	// extracteddataDescConfidenceScore is the schema descriptor for confidence_score field.
	extracteddataDescConfidenceScore := extracteddataFields[13].Descriptor()
	// extracteddata.ConfidenceScoreValidator is a validator for the "confidence_score" field. It is called by the builders before save.
	extracteddata.ConfidenceScoreValidator = func() func(float64) error {
		validators := extracteddataDescConfidenceScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence_score float64) error {
			for _, fn := range fns {
				if err := fn(confidence_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extracteddataDescExtractionMethod is the schema descriptor for extraction_method field.
	extracteddataDescExtractionMethod := extracteddataFields[14].Descriptor()
	// extracteddata.ExtractionMethodValidator is a validator for the "extraction_method" field. It is called by the builders before save.
	extracteddata.ExtractionMethodValidator = extracteddataDescExtractionMethod.Validators[0].(func(string) error)
	// extracteddataDescPatternSetVersion is the schema descriptor for pattern_set_version field.
	extracteddataDescPatternSetVersion := extracteddataFields[15].Descriptor()
	// extracteddata.PatternSetVersionValidator is a validator for the "pattern_set_version" field. It is called by the builders before save.
	extracteddata.PatternSetVersionValidator = extracteddataDescPatternSetVersion.Validators[0].(func(string) error)
	// extracteddataDescNeedsReview is the schema descriptor for needs_review field.
	extracteddataDescNeedsReview := extracteddataFields[16].Descriptor()
	// extracteddata.DefaultNeedsReview holds the default value on creation for the needs_review field.
	extracteddata.DefaultNeedsReview = extracteddataDescNeedsReview.Default.(bool)
	// extracteddataDescExtractedAt is the schema descriptor for extracted_at field.
	extracteddataDescExtractedAt := extracteddataFields[17].Descriptor()
	// extracteddata.DefaultExtractedAt holds the default value on creation for the extracted_at field.
	extracteddata.DefaultExtractedAt = extracteddataDescExtractedAt.Default.(func() time.Time)
}

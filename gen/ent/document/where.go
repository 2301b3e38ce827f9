// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/biasharaledger/docextract/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCompanyID, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldRawText, v))
}

// SourceFormat applies equality check predicate on the "source_format" field. It's identical to SourceFormatEQ.
func SourceFormat(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSourceFormat, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStatus, v))
}

// PatternSetVersion applies equality check predicate on the "pattern_set_version" field. It's identical to PatternSetVersionEQ.
func PatternSetVersion(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPatternSetVersion, v))
}

// AttemptCount applies equality check predicate on the "attempt_count" field. It's identical to AttemptCountEQ.
func AttemptCount(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldAttemptCount, v))
}

// LastErrorKind applies equality check predicate on the "last_error_kind" field. It's identical to LastErrorKindEQ.
func LastErrorKind(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldLastErrorKind, v))
}

// LastErrorMessage applies equality check predicate on the "last_error_message" field. It's identical to LastErrorMessageEQ.
func LastErrorMessage(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldLastErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessedAt, v))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCompanyID, vs...))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldRawText, v))
}

// SourceFormatEQ applies the EQ predicate on the "source_format" field.
func SourceFormatEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSourceFormat, v))
}

// SourceFormatNEQ applies the NEQ predicate on the "source_format" field.
func SourceFormatNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSourceFormat, v))
}

// SourceFormatIn applies the In predicate on the "source_format" field.
func SourceFormatIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSourceFormat, vs...))
}

// SourceFormatNotIn applies the NotIn predicate on the "source_format" field.
func SourceFormatNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSourceFormat, vs...))
}

// SourceFormatGT applies the GT predicate on the "source_format" field.
func SourceFormatGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldSourceFormat, v))
}

// SourceFormatGTE applies the GTE predicate on the "source_format" field.
func SourceFormatGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldSourceFormat, v))
}

// SourceFormatLT applies the LT predicate on the "source_format" field.
func SourceFormatLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldSourceFormat, v))
}

// SourceFormatLTE applies the LTE predicate on the "source_format" field.
func SourceFormatLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldSourceFormat, v))
}

// SourceFormatContains applies the Contains predicate on the "source_format" field.
func SourceFormatContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldSourceFormat, v))
}

// SourceFormatHasPrefix applies the HasPrefix predicate on the "source_format" field.
func SourceFormatHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldSourceFormat, v))
}

// SourceFormatHasSuffix applies the HasSuffix predicate on the "source_format" field.
func SourceFormatHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldSourceFormat, v))
}

// SourceFormatEqualFold applies the EqualFold predicate on the "source_format" field.
func SourceFormatEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldSourceFormat, v))
}

// SourceFormatContainsFold applies the ContainsFold predicate on the "source_format" field.
func SourceFormatContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldSourceFormat, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldStatus, v))
}

// PatternSetVersionEQ applies the EQ predicate on the "pattern_set_version" field.
func PatternSetVersionEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPatternSetVersion, v))
}

// PatternSetVersionNEQ applies the NEQ predicate on the "pattern_set_version" field.
func PatternSetVersionNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldPatternSetVersion, v))
}

// PatternSetVersionIn applies the In predicate on the "pattern_set_version" field.
func PatternSetVersionIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldPatternSetVersion, vs...))
}

// PatternSetVersionNotIn applies the NotIn predicate on the "pattern_set_version" field.
func PatternSetVersionNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldPatternSetVersion, vs...))
}

// PatternSetVersionGT applies the GT predicate on the "pattern_set_version" field.
func PatternSetVersionGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldPatternSetVersion, v))
}

// PatternSetVersionGTE applies the GTE predicate on the "pattern_set_version" field.
func PatternSetVersionGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldPatternSetVersion, v))
}

// PatternSetVersionLT applies the LT predicate on the "pattern_set_version" field.
func PatternSetVersionLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldPatternSetVersion, v))
}

// PatternSetVersionLTE applies the LTE predicate on the "pattern_set_version" field.
func PatternSetVersionLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldPatternSetVersion, v))
}

// PatternSetVersionContains applies the Contains predicate on the "pattern_set_version" field.
func PatternSetVersionContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldPatternSetVersion, v))
}

// PatternSetVersionHasPrefix applies the HasPrefix predicate on the "pattern_set_version" field.
func PatternSetVersionHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldPatternSetVersion, v))
}

// PatternSetVersionHasSuffix applies the HasSuffix predicate on the "pattern_set_version" field.
func PatternSetVersionHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldPatternSetVersion, v))
}

// PatternSetVersionIsNil applies the IsNil predicate on the "pattern_set_version" field.
func PatternSetVersionIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldPatternSetVersion))
}

// PatternSetVersionNotNil applies the NotNil predicate on the "pattern_set_version" field.
func PatternSetVersionNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldPatternSetVersion))
}

// PatternSetVersionEqualFold applies the EqualFold predicate on the "pattern_set_version" field.
func PatternSetVersionEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldPatternSetVersion, v))
}

// PatternSetVersionContainsFold applies the ContainsFold predicate on the "pattern_set_version" field.
func PatternSetVersionContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldPatternSetVersion, v))
}

// AttemptCountEQ applies the EQ predicate on the "attempt_count" field.
func AttemptCountEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldAttemptCount, v))
}

// AttemptCountNEQ applies the NEQ predicate on the "attempt_count" field.
func AttemptCountNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldAttemptCount, v))
}

// AttemptCountIn applies the In predicate on the "attempt_count" field.
func AttemptCountIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldAttemptCount, vs...))
}

// AttemptCountNotIn applies the NotIn predicate on the "attempt_count" field.
func AttemptCountNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldAttemptCount, vs...))
}

// AttemptCountGT applies the GT predicate on the "attempt_count" field.
func AttemptCountGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldAttemptCount, v))
}

// AttemptCountGTE applies the GTE predicate on the "attempt_count" field.
func AttemptCountGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldAttemptCount, v))
}

// AttemptCountLT applies the LT predicate on the "attempt_count" field.
func AttemptCountLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldAttemptCount, v))
}

// AttemptCountLTE applies the LTE predicate on the "attempt_count" field.
func AttemptCountLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldAttemptCount, v))
}

// LastErrorKindEQ applies the EQ predicate on the "last_error_kind" field.
func LastErrorKindEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldLastErrorKind, v))
}

// LastErrorKindNEQ applies the NEQ predicate on the "last_error_kind" field.
func LastErrorKindNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldLastErrorKind, v))
}

// LastErrorKindIn applies the In predicate on the "last_error_kind" field.
func LastErrorKindIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldLastErrorKind, vs...))
}

// LastErrorKindNotIn applies the NotIn predicate on the "last_error_kind" field.
func LastErrorKindNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldLastErrorKind, vs...))
}

// LastErrorKindGT applies the GT predicate on the "last_error_kind" field.
func LastErrorKindGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldLastErrorKind, v))
}

// LastErrorKindGTE applies the GTE predicate on the "last_error_kind" field.
func LastErrorKindGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldLastErrorKind, v))
}

// LastErrorKindLT applies the LT predicate on the "last_error_kind" field.
func LastErrorKindLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldLastErrorKind, v))
}

// LastErrorKindLTE applies the LTE predicate on the "last_error_kind" field.
func LastErrorKindLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldLastErrorKind, v))
}

// LastErrorKindContains applies the Contains predicate on the "last_error_kind" field.
func LastErrorKindContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldLastErrorKind, v))
}

// LastErrorKindHasPrefix applies the HasPrefix predicate on the "last_error_kind" field.
func LastErrorKindHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldLastErrorKind, v))
}

// LastErrorKindHasSuffix applies the HasSuffix predicate on the "last_error_kind" field.
func LastErrorKindHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldLastErrorKind, v))
}

// LastErrorKindIsNil applies the IsNil predicate on the "last_error_kind" field.
func LastErrorKindIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldLastErrorKind))
}

// LastErrorKindNotNil applies the NotNil predicate on the "last_error_kind" field.
func LastErrorKindNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldLastErrorKind))
}

// LastErrorKindEqualFold applies the EqualFold predicate on the "last_error_kind" field.
func LastErrorKindEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldLastErrorKind, v))
}

// LastErrorKindContainsFold applies the ContainsFold predicate on the "last_error_kind" field.
func LastErrorKindContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldLastErrorKind, v))
}

// LastErrorMessageEQ applies the EQ predicate on the "last_error_message" field.
func LastErrorMessageEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldLastErrorMessage, v))
}

// LastErrorMessageNEQ applies the NEQ predicate on the "last_error_message" field.
func LastErrorMessageNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldLastErrorMessage, v))
}

// LastErrorMessageIn applies the In predicate on the "last_error_message" field.
func LastErrorMessageIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldLastErrorMessage, vs...))
}

// LastErrorMessageNotIn applies the NotIn predicate on the "last_error_message" field.
func LastErrorMessageNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldLastErrorMessage, vs...))
}

// LastErrorMessageGT applies the GT predicate on the "last_error_message" field.
func LastErrorMessageGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldLastErrorMessage, v))
}

// LastErrorMessageGTE applies the GTE predicate on the "last_error_message" field.
func LastErrorMessageGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldLastErrorMessage, v))
}

// LastErrorMessageLT applies the LT predicate on the "last_error_message" field.
func LastErrorMessageLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldLastErrorMessage, v))
}

// LastErrorMessageLTE applies the LTE predicate on the "last_error_message" field.
func LastErrorMessageLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldLastErrorMessage, v))
}

// LastErrorMessageContains applies the Contains predicate on the "last_error_message" field.
func LastErrorMessageContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldLastErrorMessage, v))
}

// LastErrorMessageHasPrefix applies the HasPrefix predicate on the "last_error_message" field.
func LastErrorMessageHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldLastErrorMessage, v))
}

// LastErrorMessageHasSuffix applies the HasSuffix predicate on the "last_error_message" field.
func LastErrorMessageHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldLastErrorMessage, v))
}

// LastErrorMessageIsNil applies the IsNil predicate on the "last_error_message" field.
func LastErrorMessageIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldLastErrorMessage))
}

// LastErrorMessageNotNil applies the NotNil predicate on the "last_error_message" field.
func LastErrorMessageNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldLastErrorMessage))
}

// LastErrorMessageEqualFold applies the EqualFold predicate on the "last_error_message" field.
func LastErrorMessageEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldLastErrorMessage, v))
}

// LastErrorMessageContainsFold applies the ContainsFold predicate on the "last_error_message" field.
func LastErrorMessageContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldLastErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCreatedAt, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtIsNil applies the IsNil predicate on the "processed_at" field.
func ProcessedAtIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldProcessedAt))
}

// ProcessedAtNotNil applies the NotNil predicate on the "processed_at" field.
func ProcessedAtNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldProcessedAt))
}

// HasCompany applies the HasEdge predicate on the "company" edge.
func HasCompany() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCompanyWith applies the HasEdge predicate on the "company" edge with a given conditions (other predicates).
func HasCompanyWith(preds ...predicate.Company) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newCompanyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExtraction applies the HasEdge predicate on the "extraction" edge.
func HasExtraction() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ExtractionTable, ExtractionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExtractionWith applies the HasEdge predicate on the "extraction" edge with a given conditions (other predicates).
func HasExtractionWith(preds ...predicate.ExtractedData) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newExtractionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package crawleditem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/factforge/factforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldContainsFold(FieldID, id))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEQ(FieldURL, v))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEQ(FieldDomain, v))
}

// RawHTMLPath applies equality check predicate on the "raw_html_path" field. It's identical to RawHTMLPathEQ.
func RawHTMLPath(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEQ(FieldRawHTMLPath, v))
}

// ScreenshotPath applies equality check predicate on the "screenshot_path" field. It's identical to ScreenshotPathEQ.
func ScreenshotPath(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEQ(FieldScreenshotPath, v))
}

// CleanText applies equality check predicate on the "clean_text" field. It's identical to CleanTextEQ.
func CleanText(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEQ(FieldCleanText, v))
}

// LangConfidence applies equality check predicate on the "lang_confidence" field. It's identical to LangConfidenceEQ.
func LangConfidence(v float64) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEQ(FieldLangConfidence, v))
}

// Translit applies equality check predicate on the "translit" field. It's identical to TranslitEQ.
func Translit(v bool) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEQ(FieldTranslit, v))
}

// HeuristicScore applies equality check predicate on the "heuristic_score" field. It's identical to HeuristicScoreEQ.
func HeuristicScore(v float64) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEQ(FieldHeuristicScore, v))
}

// ClassifierScore applies equality check predicate on the "classifier_score" field. It's identical to ClassifierScoreEQ.
func ClassifierScore(v float64) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEQ(FieldClassifierScore, v))
}

// IngestedAt applies equality check predicate on the "ingested_at" field. It's identical to IngestedAtEQ.
func IngestedAt(v time.Time) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEQ(FieldIngestedAt, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldContainsFold(FieldURL, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldContainsFold(FieldDomain, v))
}

// RawHTMLPathEQ applies the EQ predicate on the "raw_html_path" field.
func RawHTMLPathEQ(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEQ(FieldRawHTMLPath, v))
}

// RawHTMLPathNEQ applies the NEQ predicate on the "raw_html_path" field.
func RawHTMLPathNEQ(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNEQ(FieldRawHTMLPath, v))
}

// RawHTMLPathIn applies the In predicate on the "raw_html_path" field.
func RawHTMLPathIn(vs ...string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldIn(FieldRawHTMLPath, vs...))
}

// RawHTMLPathNotIn applies the NotIn predicate on the "raw_html_path" field.
func RawHTMLPathNotIn(vs ...string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNotIn(FieldRawHTMLPath, vs...))
}

// RawHTMLPathGT applies the GT predicate on the "raw_html_path" field.
func RawHTMLPathGT(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldGT(FieldRawHTMLPath, v))
}

// RawHTMLPathGTE applies the GTE predicate on the "raw_html_path" field.
func RawHTMLPathGTE(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldGTE(FieldRawHTMLPath, v))
}

// RawHTMLPathLT applies the LT predicate on the "raw_html_path" field.
func RawHTMLPathLT(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldLT(FieldRawHTMLPath, v))
}

// RawHTMLPathLTE applies the LTE predicate on the "raw_html_path" field.
func RawHTMLPathLTE(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldLTE(FieldRawHTMLPath, v))
}

// RawHTMLPathContains applies the Contains predicate on the "raw_html_path" field.
func RawHTMLPathContains(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldContains(FieldRawHTMLPath, v))
}

// RawHTMLPathHasPrefix applies the HasPrefix predicate on the "raw_html_path" field.
func RawHTMLPathHasPrefix(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldHasPrefix(FieldRawHTMLPath, v))
}

// RawHTMLPathHasSuffix applies the HasSuffix predicate on the "raw_html_path" field.
func RawHTMLPathHasSuffix(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldHasSuffix(FieldRawHTMLPath, v))
}

// RawHTMLPathIsNil applies the IsNil predicate on the "raw_html_path" field.
func RawHTMLPathIsNil() predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldIsNull(FieldRawHTMLPath))
}

// RawHTMLPathNotNil applies the NotNil predicate on the "raw_html_path" field.
func RawHTMLPathNotNil() predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNotNull(FieldRawHTMLPath))
}

// RawHTMLPathEqualFold applies the EqualFold predicate on the "raw_html_path" field.
func RawHTMLPathEqualFold(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEqualFold(FieldRawHTMLPath, v))
}

// RawHTMLPathContainsFold applies the ContainsFold predicate on the "raw_html_path" field.
func RawHTMLPathContainsFold(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldContainsFold(FieldRawHTMLPath, v))
}

// ScreenshotPathEQ applies the EQ predicate on the "screenshot_path" field.
func ScreenshotPathEQ(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEQ(FieldScreenshotPath, v))
}

// ScreenshotPathNEQ applies the NEQ predicate on the "screenshot_path" field.
func ScreenshotPathNEQ(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNEQ(FieldScreenshotPath, v))
}

// ScreenshotPathIn applies the In predicate on the "screenshot_path" field.
func ScreenshotPathIn(vs ...string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldIn(FieldScreenshotPath, vs...))
}

// ScreenshotPathNotIn applies the NotIn predicate on the "screenshot_path" field.
func ScreenshotPathNotIn(vs ...string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNotIn(FieldScreenshotPath, vs...))
}

// ScreenshotPathGT applies the GT predicate on the "screenshot_path" field.
func ScreenshotPathGT(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldGT(FieldScreenshotPath, v))
}

// ScreenshotPathGTE applies the GTE predicate on the "screenshot_path" field.
func ScreenshotPathGTE(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldGTE(FieldScreenshotPath, v))
}

// ScreenshotPathLT applies the LT predicate on the "screenshot_path" field.
func ScreenshotPathLT(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldLT(FieldScreenshotPath, v))
}

// ScreenshotPathLTE applies the LTE predicate on the "screenshot_path" field.
func ScreenshotPathLTE(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldLTE(FieldScreenshotPath, v))
}

// ScreenshotPathContains applies the Contains predicate on the "screenshot_path" field.
func ScreenshotPathContains(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldContains(FieldScreenshotPath, v))
}

// ScreenshotPathHasPrefix applies the HasPrefix predicate on the "screenshot_path" field.
func ScreenshotPathHasPrefix(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldHasPrefix(FieldScreenshotPath, v))
}

// ScreenshotPathHasSuffix applies the HasSuffix predicate on the "screenshot_path" field.
func ScreenshotPathHasSuffix(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldHasSuffix(FieldScreenshotPath, v))
}

// ScreenshotPathIsNil applies the IsNil predicate on the "screenshot_path" field.
func ScreenshotPathIsNil() predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldIsNull(FieldScreenshotPath))
}

// ScreenshotPathNotNil applies the NotNil predicate on the "screenshot_path" field.
func ScreenshotPathNotNil() predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNotNull(FieldScreenshotPath))
}

// ScreenshotPathEqualFold applies the EqualFold predicate on the "screenshot_path" field.
func ScreenshotPathEqualFold(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEqualFold(FieldScreenshotPath, v))
}

// ScreenshotPathContainsFold applies the ContainsFold predicate on the "screenshot_path" field.
func ScreenshotPathContainsFold(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldContainsFold(FieldScreenshotPath, v))
}

// CleanTextEQ applies the EQ predicate on the "clean_text" field.
func CleanTextEQ(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEQ(FieldCleanText, v))
}

// CleanTextNEQ applies the NEQ predicate on the "clean_text" field.
func CleanTextNEQ(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNEQ(FieldCleanText, v))
}

// CleanTextIn applies the In predicate on the "clean_text" field.
func CleanTextIn(vs ...string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldIn(FieldCleanText, vs...))
}

// CleanTextNotIn applies the NotIn predicate on the "clean_text" field.
func CleanTextNotIn(vs ...string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNotIn(FieldCleanText, vs...))
}

// CleanTextGT applies the GT predicate on the "clean_text" field.
func CleanTextGT(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldGT(FieldCleanText, v))
}

// CleanTextGTE applies the GTE predicate on the "clean_text" field.
func CleanTextGTE(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldGTE(FieldCleanText, v))
}

// CleanTextLT applies the LT predicate on the "clean_text" field.
func CleanTextLT(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldLT(FieldCleanText, v))
}

// CleanTextLTE applies the LTE predicate on the "clean_text" field.
func CleanTextLTE(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldLTE(FieldCleanText, v))
}

// CleanTextContains applies the Contains predicate on the "clean_text" field.
func CleanTextContains(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldContains(FieldCleanText, v))
}

// CleanTextHasPrefix applies the HasPrefix predicate on the "clean_text" field.
func CleanTextHasPrefix(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldHasPrefix(FieldCleanText, v))
}

// CleanTextHasSuffix applies the HasSuffix predicate on the "clean_text" field.
func CleanTextHasSuffix(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldHasSuffix(FieldCleanText, v))
}

// CleanTextEqualFold applies the EqualFold predicate on the "clean_text" field.
func CleanTextEqualFold(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEqualFold(FieldCleanText, v))
}

// CleanTextContainsFold applies the ContainsFold predicate on the "clean_text" field.
func CleanTextContainsFold(v string) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldContainsFold(FieldCleanText, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v Language) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v Language) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...Language) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...Language) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNotIn(FieldLanguage, vs...))
}

// LangConfidenceEQ applies the EQ predicate on the "lang_confidence" field.
func LangConfidenceEQ(v float64) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEQ(FieldLangConfidence, v))
}

// LangConfidenceNEQ applies the NEQ predicate on the "lang_confidence" field.
func LangConfidenceNEQ(v float64) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNEQ(FieldLangConfidence, v))
}

// LangConfidenceIn applies the In predicate on the "lang_confidence" field.
func LangConfidenceIn(vs ...float64) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldIn(FieldLangConfidence, vs...))
}

// LangConfidenceNotIn applies the NotIn predicate on the "lang_confidence" field.
func LangConfidenceNotIn(vs ...float64) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNotIn(FieldLangConfidence, vs...))
}

// LangConfidenceGT applies the GT predicate on the "lang_confidence" field.
func LangConfidenceGT(v float64) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldGT(FieldLangConfidence, v))
}

// LangConfidenceGTE applies the GTE predicate on the "lang_confidence" field.
func LangConfidenceGTE(v float64) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldGTE(FieldLangConfidence, v))
}

// LangConfidenceLT applies the LT predicate on the "lang_confidence" field.
func LangConfidenceLT(v float64) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldLT(FieldLangConfidence, v))
}

// LangConfidenceLTE applies the LTE predicate on the "lang_confidence" field.
func LangConfidenceLTE(v float64) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldLTE(FieldLangConfidence, v))
}

// TranslitEQ applies the EQ predicate on the "translit" field.
func TranslitEQ(v bool) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEQ(FieldTranslit, v))
}

// TranslitNEQ applies the NEQ predicate on the "translit" field.
func TranslitNEQ(v bool) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNEQ(FieldTranslit, v))
}

// HeuristicScoreEQ applies the EQ predicate on the "heuristic_score" field.
func HeuristicScoreEQ(v float64) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEQ(FieldHeuristicScore, v))
}

// HeuristicScoreNEQ applies the NEQ predicate on the "heuristic_score" field.
func HeuristicScoreNEQ(v float64) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNEQ(FieldHeuristicScore, v))
}

// HeuristicScoreIn applies the In predicate on the "heuristic_score" field.
func HeuristicScoreIn(vs ...float64) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldIn(FieldHeuristicScore, vs...))
}

// HeuristicScoreNotIn applies the NotIn predicate on the "heuristic_score" field.
func HeuristicScoreNotIn(vs ...float64) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNotIn(FieldHeuristicScore, vs...))
}

// HeuristicScoreGT applies the GT predicate on the "heuristic_score" field.
func HeuristicScoreGT(v float64) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldGT(FieldHeuristicScore, v))
}

// HeuristicScoreGTE applies the GTE predicate on the "heuristic_score" field.
func HeuristicScoreGTE(v float64) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldGTE(FieldHeuristicScore, v))
}

// HeuristicScoreLT applies the LT predicate on the "heuristic_score" field.
func HeuristicScoreLT(v float64) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldLT(FieldHeuristicScore, v))
}

// HeuristicScoreLTE applies the LTE predicate on the "heuristic_score" field.
func HeuristicScoreLTE(v float64) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldLTE(FieldHeuristicScore, v))
}

// ClassifierScoreEQ applies the EQ predicate on the "classifier_score" field.
func ClassifierScoreEQ(v float64) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEQ(FieldClassifierScore, v))
}

// ClassifierScoreNEQ applies the NEQ predicate on the "classifier_score" field.
func ClassifierScoreNEQ(v float64) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNEQ(FieldClassifierScore, v))
}

// ClassifierScoreIn applies the In predicate on the "classifier_score" field.
func ClassifierScoreIn(vs ...float64) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldIn(FieldClassifierScore, vs...))
}

// ClassifierScoreNotIn applies the NotIn predicate on the "classifier_score" field.
func ClassifierScoreNotIn(vs ...float64) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNotIn(FieldClassifierScore, vs...))
}

// ClassifierScoreGT applies the GT predicate on the "classifier_score" field.
func ClassifierScoreGT(v float64) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldGT(FieldClassifierScore, v))
}

// ClassifierScoreGTE applies the GTE predicate on the "classifier_score" field.
func ClassifierScoreGTE(v float64) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldGTE(FieldClassifierScore, v))
}

// ClassifierScoreLT applies the LT predicate on the "classifier_score" field.
func ClassifierScoreLT(v float64) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldLT(FieldClassifierScore, v))
}

// ClassifierScoreLTE applies the LTE predicate on the "classifier_score" field.
func ClassifierScoreLTE(v float64) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldLTE(FieldClassifierScore, v))
}

// ClassifierScoreIsNil applies the IsNil predicate on the "classifier_score" field.
func ClassifierScoreIsNil() predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldIsNull(FieldClassifierScore))
}

// ClassifierScoreNotNil applies the NotNil predicate on the "classifier_score" field.
func ClassifierScoreNotNil() predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNotNull(FieldClassifierScore))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v Label) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v Label) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...Label) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...Label) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNotIn(FieldLabel, vs...))
}

// ImageHashesIsNil applies the IsNil predicate on the "image_hashes" field.
func ImageHashesIsNil() predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldIsNull(FieldImageHashes))
}

// ImageHashesNotNil applies the NotNil predicate on the "image_hashes" field.
func ImageHashesNotNil() predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNotNull(FieldImageHashes))
}

// WhoisDataIsNil applies the IsNil predicate on the "whois_data" field.
func WhoisDataIsNil() predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldIsNull(FieldWhoisData))
}

// WhoisDataNotNil applies the NotNil predicate on the "whois_data" field.
func WhoisDataNotNil() predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNotNull(FieldWhoisData))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNotNull(FieldMetadata))
}

// IngestedAtEQ applies the EQ predicate on the "ingested_at" field.
func IngestedAtEQ(v time.Time) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldEQ(FieldIngestedAt, v))
}

// IngestedAtNEQ applies the NEQ predicate on the "ingested_at" field.
func IngestedAtNEQ(v time.Time) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNEQ(FieldIngestedAt, v))
}

// IngestedAtIn applies the In predicate on the "ingested_at" field.
func IngestedAtIn(vs ...time.Time) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldIn(FieldIngestedAt, vs...))
}

// IngestedAtNotIn applies the NotIn predicate on the "ingested_at" field.
func IngestedAtNotIn(vs ...time.Time) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldNotIn(FieldIngestedAt, vs...))
}

// IngestedAtGT applies the GT predicate on the "ingested_at" field.
func IngestedAtGT(v time.Time) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldGT(FieldIngestedAt, v))
}

// IngestedAtGTE applies the GTE predicate on the "ingested_at" field.
func IngestedAtGTE(v time.Time) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldGTE(FieldIngestedAt, v))
}

// IngestedAtLT applies the LT predicate on the "ingested_at" field.
func IngestedAtLT(v time.Time) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldLT(FieldIngestedAt, v))
}

// IngestedAtLTE applies the LTE predicate on the "ingested_at" field.
func IngestedAtLTE(v time.Time) predicate.CrawledItem {
	return predicate.CrawledItem(sql.FieldLTE(FieldIngestedAt, v))
}

// HasVectorRecord applies the HasEdge predicate on the "vector_record" edge.
func HasVectorRecord() predicate.CrawledItem {
	return predicate.CrawledItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, VectorRecordTable, VectorRecordColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVectorRecordWith applies the HasEdge predicate on the "vector_record" edge with a given conditions (other predicates).
func HasVectorRecordWith(preds ...predicate.VectorRecord) predicate.CrawledItem {
	return predicate.CrawledItem(func(s *sql.Selector) {
		step := newVectorRecordStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReviewEntries applies the HasEdge predicate on the "review_entries" edge.
func HasReviewEntries() predicate.CrawledItem {
	return predicate.CrawledItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReviewEntriesTable, ReviewEntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReviewEntriesWith applies the HasEdge predicate on the "review_entries" edge with a given conditions (other predicates).
func HasReviewEntriesWith(preds ...predicate.ReviewEntry) predicate.CrawledItem {
	return predicate.CrawledItem(func(s *sql.Selector) {
		step := newReviewEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CrawledItem) predicate.CrawledItem {
	return predicate.CrawledItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CrawledItem) predicate.CrawledItem {
	return predicate.CrawledItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CrawledItem) predicate.CrawledItem {
	return predicate.CrawledItem(sql.NotPredicates(p))
}

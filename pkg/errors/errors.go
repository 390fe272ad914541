// Package errors はモデルデコード全体のエラーハンドリングを提供します。
// XGBoostのシリアライズ済みモデルを読み込む際に発生しうる失敗を、
// 構造化されたエラー型として提供します。
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	構造化されたデコードエラー型
//
// ===========================================================================

// MissingFieldError はドキュメントに必須フィールドが存在しない場合のエラーです。
// Path はドキュメントルートからの完全なパスを保持します
// （例: "learner.gradient_booster.model.trees[2].id"）。
type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("gbtree: missing required field '%s'", e.Path)
}

// Code はログ出力用の安定したエラーコードを返します。
func (e *MissingFieldError) Code() string { return "MISSING_FIELD" }

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *MissingFieldError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("path", e.Path).
		Str("type", "MissingFieldError")
}

// NewMissingFieldError は新しいMissingFieldErrorを作成し、スタックトレースを付与します。
func NewMissingFieldError(path string) error {
	err := &MissingFieldError{Path: path}
	return errors.WithStack(err)
}

// TypeMismatchError はフィールドの値が期待される種類と異なる場合のエラーです。
// 例えば、数値配列を期待した場所に文字列が現れた場合など。
type TypeMismatchError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("gbtree: field '%s': expected %s, got %s", e.Path, e.Expected, e.Actual)
}

// Code はログ出力用の安定したエラーコードを返します。
func (e *TypeMismatchError) Code() string { return "TYPE_MISMATCH" }

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *TypeMismatchError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("path", e.Path).
		Str("expected", e.Expected).
		Str("actual", e.Actual).
		Str("type", "TypeMismatchError")
}

// NewTypeMismatchError は新しいTypeMismatchErrorを作成し、スタックトレースを付与します。
func NewTypeMismatchError(path, expected, actual string) error {
	err := &TypeMismatchError{Path: path, Expected: expected, Actual: actual}
	return errors.WithStack(err)
}

// LengthMismatchError は並列配列の長さが期待値と一致しない場合のエラーです。
// 各ツリーのノード配列はすべて同じ長さでなければなりません。
// フォレストレベルの不一致（trees / tree_info）では TreeID に -1 を設定します。
type LengthMismatchError struct {
	TreeID   int
	Field    string
	Expected int
	Got      int
}

func (e *LengthMismatchError) Error() string {
	if e.TreeID < 0 {
		return fmt.Sprintf("gbtree: field '%s': length mismatch. Expected %d, got %d",
			e.Field, e.Expected, e.Got)
	}
	return fmt.Sprintf("gbtree: tree %d: field '%s': length mismatch. Expected %d, got %d",
		e.TreeID, e.Field, e.Expected, e.Got)
}

// Code はログ出力用の安定したエラーコードを返します。
func (e *LengthMismatchError) Code() string { return "LENGTH_MISMATCH" }

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *LengthMismatchError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("tree_id", e.TreeID).
		Str("field", e.Field).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Str("type", "LengthMismatchError")
}

// NewLengthMismatchError は新しいLengthMismatchErrorを作成し、スタックトレースを付与します。
func NewLengthMismatchError(treeID int, field string, expected, got int) error {
	err := &LengthMismatchError{TreeID: treeID, Field: field, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// InvalidSplitTypeError は分割タイプのタグが既知の値（0または1）でない場合のエラーです。
type InvalidSplitTypeError struct {
	TreeID int
	NodeID int
	Value  int
}

func (e *InvalidSplitTypeError) Error() string {
	return fmt.Sprintf("gbtree: tree %d: node %d: invalid split type %d", e.TreeID, e.NodeID, e.Value)
}

// Code はログ出力用の安定したエラーコードを返します。
func (e *InvalidSplitTypeError) Code() string { return "INVALID_SPLIT_TYPE" }

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InvalidSplitTypeError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("tree_id", e.TreeID).
		Int("node_id", e.NodeID).
		Int("value", e.Value).
		Str("type", "InvalidSplitTypeError")
}

// NewInvalidSplitTypeError は新しいInvalidSplitTypeErrorを作成し、スタックトレースを付与します。
func NewInvalidSplitTypeError(treeID, nodeID, value int) error {
	err := &InvalidSplitTypeError{TreeID: treeID, NodeID: nodeID, Value: value}
	return errors.WithStack(err)
}

// TreeIDMismatchError はツリーが宣言するIDと配列内の位置が一致しない場合のエラーです。
// i番目のツリーは id == i を宣言しなければなりません。
type TreeIDMismatchError struct {
	Declared int
	Position int
}

func (e *TreeIDMismatchError) Error() string {
	return fmt.Sprintf("gbtree: tree at position %d declares id %d", e.Position, e.Declared)
}

// Code はログ出力用の安定したエラーコードを返します。
func (e *TreeIDMismatchError) Code() string { return "TREE_ID_MISMATCH" }

// NewTreeIDMismatchError は新しいTreeIDMismatchErrorを作成し、スタックトレースを付与します。
func NewTreeIDMismatchError(declared, position int) error {
	err := &TreeIDMismatchError{Declared: declared, Position: position}
	return errors.WithStack(err)
}

// MalformedTreeError はツリーの構造制約が破られている場合のエラーです。
// 主にカテゴリカル分割のCSRレイアウト（categories_segments /
// categories_sizes / categories_nodes / categories）の検証失敗を表します。
type MalformedTreeError struct {
	TreeID int
	Field  string
	Reason string
}

func (e *MalformedTreeError) Error() string {
	return fmt.Sprintf("gbtree: tree %d: malformed '%s': %s", e.TreeID, e.Field, e.Reason)
}

// Code はログ出力用の安定したエラーコードを返します。
func (e *MalformedTreeError) Code() string { return "MALFORMED_TREE" }

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *MalformedTreeError) MarshalZerologObject(event *zerolog.Event) {
	event.Int("tree_id", e.TreeID).
		Str("field", e.Field).
		Str("reason", e.Reason).
		Str("type", "MalformedTreeError")
}

// NewMalformedTreeError は新しいMalformedTreeErrorを作成し、スタックトレースを付与します。
func NewMalformedTreeError(treeID int, field, reason string) error {
	err := &MalformedTreeError{TreeID: treeID, Field: field, Reason: reason}
	return errors.WithStack(err)
}

// NodeIndexOutOfBoundsError はツリーに存在しないノードIDへのアクセスを表すエラーです。
type NodeIndexOutOfBoundsError struct {
	TreeID   int
	NodeID   int
	NumNodes int
}

func (e *NodeIndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("gbtree: tree %d: node %d out of range [0, %d)", e.TreeID, e.NodeID, e.NumNodes)
}

// Code はログ出力用の安定したエラーコードを返します。
func (e *NodeIndexOutOfBoundsError) Code() string { return "NODE_INDEX_OUT_OF_BOUNDS" }

// NewNodeIndexOutOfBoundsError は新しいNodeIndexOutOfBoundsErrorを作成し、スタックトレースを付与します。
func NewNodeIndexOutOfBoundsError(treeID, nodeID, numNodes int) error {
	err := &NodeIndexOutOfBoundsError{TreeID: treeID, NodeID: nodeID, NumNodes: numNodes}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrUnknownFormat はモデルファイルの拡張子が .json でも .ubj でもない場合のエラーです。
	ErrUnknownFormat = New("unknown model format")

	// ErrNilDocument はnilのドキュメントが渡された場合のエラーです。
	ErrNilDocument = New("nil document")
)

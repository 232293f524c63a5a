// Package doctag extracts module documentation from tagged block comments.
//
// Назначение: собрать /*## Header:, /*## Examples: и /*## Attributes:
// блоки исходника в отдельный документ.
// Работает с сырым текстом, до нормализации: комментарии здесь и есть данные.
package doctag

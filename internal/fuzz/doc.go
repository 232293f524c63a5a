
// Package fuzztests houses Go fuzz harnesses for the formatting pipeline
// (source -> normalizer -> reflow). Its goal is to smoke test robustness and
// guard against panics or broken statement spans on arbitrary inputs.
//
// Назначение: прогонять произвольные байты через FileSet, нормализатор и
// упаковщик строк, проверяя инварианты из internal/testkit.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/format,
// internal/diag, internal/testkit.

package fuzztests

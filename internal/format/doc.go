// Package format packs normalized statements back into assembler source.
//
// Назначение: второй проход конвейера: ширина строки, отступы и
// принудительные переносы поверх уже нормализованных Statement.
// Не делает: разбора синтаксиса, чтения файлов, IO.
// Зависимости: internal/config, internal/lexer, go-runewidth.
package format

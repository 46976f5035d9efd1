// Package fasta reads sequences and reads from FASTA or FASTQ files, plain
// or gzip-compressed, or from stdin when the path is "-".
package fasta

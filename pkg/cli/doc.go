// Package cli monta a árvore de comandos cobra do awsadm.
//
// Cada execução carrega a configuração (arquivo, .env, ambiente e flags),
// constrói os clientes via ClientFactory e despacha para o comando. Os
// clientes e o provider de métricas são injetáveis para testes.
package cli

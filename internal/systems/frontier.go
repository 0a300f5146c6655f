package systems

import (
	"container/heap"

	"creature-server/internal/domain"
)

// pathNode - узел поиска пути
type pathNode struct {
	Pos    domain.Position
	G      int       // накопленная стоимость от старта
	F      int       // G + эвристика
	Parent *pathNode // для восстановления пути
	Index  int       // индекс в куче (нужен для update)
	Open   bool      // узел еще в очереди
	Closed bool      // узел уже раскрыт
}

// frontier реализует heap.Interface и хранит узлы поиска по возрастанию F
type frontier []*pathNode

func (fr frontier) Len() int { return len(fr) }

func (fr frontier) Less(i, j int) bool {
	// MinHeap по полной стоимости F
	return fr[i].F < fr[j].F
}

func (fr frontier) Swap(i, j int) {
	fr[i], fr[j] = fr[j], fr[i]
	fr[i].Index = i
	fr[j].Index = j
}

func (fr *frontier) Push(x interface{}) {
	n := len(*fr)
	node := x.(*pathNode)
	node.Index = n
	node.Open = true
	*fr = append(*fr, node)
}

func (fr *frontier) Pop() interface{} {
	old := *fr
	n := len(old)
	node := old[n-1]
	old[n-1] = nil // избегаем утечки памяти
	node.Index = -1
	node.Open = false
	*fr = old[0 : n-1]
	return node
}

// Update изменяет стоимость узла в очереди (релаксация)
func (fr *frontier) Update(node *pathNode, g, f int, parent *pathNode) {
	node.G = g
	node.F = f
	node.Parent = parent
	heap.Fix(fr, node.Index)
}

// PeekBest возвращает узел с минимальной F, не извлекая его
func (fr frontier) PeekBest() *pathNode {
	if len(fr) == 0 {
		return nil
	}
	return fr[0]
}
